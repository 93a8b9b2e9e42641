package decision

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed rules.json
var defaultRules []byte

// Rule is one deny rule: a CEL expression over the application facts
// and the reason phrase reported when it fires. Rules evaluate in
// slice order, which fixes the order of the reasons list.
type Rule struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Reason     string `json:"reason"`
}

// Ruleset is an ordered list of deny rules.
type Ruleset struct {
	Rules []Rule `json:"rules"`
}

// DefaultRuleset returns the built-in deny rules.
func DefaultRuleset() (*Ruleset, error) {
	return parseRuleset(defaultRules)
}

// LoadRuleset reads a ruleset override from disk.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	rs, err := parseRuleset(data)
	if err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return rs, nil
}

// parseRuleset validates raw JSON against the ruleset schema, then
// unmarshals it. Schema validation runs first so a malformed file is
// reported with field-level detail instead of a CEL compile error.
func parseRuleset(data []byte) (*Ruleset, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledRulesetSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var rs Ruleset
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("decode ruleset: %w", err)
	}
	return &rs, nil
}

func compiledRulesetSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not a Go
	// map with typed values. Round-trip through JSON to normalize.
	defBytes, err := json.Marshal(rulesetSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("ruleset.json", def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("ruleset.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}
