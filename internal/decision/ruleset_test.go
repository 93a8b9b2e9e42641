package decision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuleset(t *testing.T) {
	rs, err := DefaultRuleset()
	require.NoError(t, err)

	wantIDs := []string{
		"bad-credit-history",
		"loan-too-high",
		"low-income-high-loan",
		"dependents-vs-income",
		"nongraduate-high-ratio",
	}
	require.Len(t, rs.Rules, len(wantIDs))
	for i, id := range wantIDs {
		assert.Equal(t, id, rs.Rules[i].ID, "rule order is part of the contract")
	}
}

func TestLoadRuleset_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	content := `{"rules":[{"id":"term-too-short","expression":"LoanTerm < 12.0","reason":"Term below one year"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rs, err := LoadRuleset(path)
	require.NoError(t, err)
	require.Len(t, rs.Rules, 1)
	assert.Equal(t, "Term below one year", rs.Rules[0].Reason)

	_, err = NewEngine(rs)
	assert.NoError(t, err)
}

func TestLoadRuleset_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{rules:}`},
		{"empty rules", `{"rules":[]}`},
		{"missing reason", `{"rules":[{"id":"x","expression":"true"}]}`},
		{"unknown field", `{"rules":[{"id":"x","expression":"true","reason":"r","severity":9}]}`},
		{"missing rules key", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadRuleset(path)
			assert.Error(t, err)
		})
	}
}

func TestNewEngine_RejectsBadExpression(t *testing.T) {
	rs := &Ruleset{Rules: []Rule{
		{ID: "broken", Expression: "NoSuchVariable > 1", Reason: "never"},
	}}

	_, err := NewEngine(rs)
	assert.Error(t, err)
}

func TestNewEngine_NonBooleanExpressionIsNonMatch(t *testing.T) {
	rs := &Ruleset{Rules: []Rule{
		{ID: "numeric", Expression: "Dependents + 1", Reason: "never fires"},
	}}
	e, err := NewEngine(rs)
	require.NoError(t, err)

	d, err := e.Decide(map[string]string{
		"ApplicantIncome": "1000",
		"LoanAmount":      "900000",
		"Credit_History":  "Good",
		"Dependents":      "0",
		"Education":       "Graduate",
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Approved, d.Verdict, "a non-boolean rule never denies")
}
