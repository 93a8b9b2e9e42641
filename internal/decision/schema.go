package decision

// rulesetSchema defines the JSON schema a ruleset file must satisfy
// before any expression is handed to the CEL compiler.
var rulesetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"rules": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"expression": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "CEL expression over the application facts; must evaluate to a boolean",
					},
					"reason": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "Human-readable phrase reported when the rule fires",
					},
				},
				"required":             []any{"id", "expression", "reason"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"rules"},
	"additionalProperties": false,
}
