package decision

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/akverma/loanlens/internal/encode"
	"github.com/akverma/loanlens/internal/tree"
)

// Verdict is the final approve/deny outcome.
type Verdict string

const (
	Approved    Verdict = "Approved"
	NotApproved Verdict = "Not Approved"
)

// Reason phrases produced outside the ruleset.
const (
	ReasonIncomeSufficient = "Total income sufficient to cover loan"
	ReasonMeetsAllCriteria = "Meets all criteria"
)

// Decision is the outcome for one application. Immutable once
// produced.
type Decision struct {
	Verdict Verdict
	Reasons []string

	// ModelLabel is the classifier's raw vote (0 or 1), or -1 when the
	// model was unavailable or its invocation failed. It is recorded
	// for the analyst but never gates the verdict; see Engine.
	ModelLabel int
}

// Reason renders the reasons list as the user-facing reason line.
func (d *Decision) Reason() string {
	return "Reason: " + strings.Join(d.Reasons, ", ")
}

// InputError reports a raw application field that the rule set
// requires but that is absent or non-numeric.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return "invalid application input: " + e.Err.Error() }

func (e *InputError) Unwrap() error { return e.Err }

// Engine applies the hybrid decision procedure: income-sufficiency
// shortcut first, then the ordered deny rules.
//
// The trained classifier is invoked and its vote recorded on the
// Decision, but the verdict depends only on the shortcut and the
// rules. That mirrors the system this replaces, where the model's
// prediction was computed and then never consulted; blending the vote
// into the verdict would change observed behavior, so it is left as a
// deliberate "rules override model" design.
type Engine struct {
	rules []compiledRule
}

type compiledRule struct {
	rule    Rule
	program cel.Program
}

// NewEngine compiles every rule in the set once. A rule that does not
// compile fails construction; evaluation never compiles.
func NewEngine(rs *Ruleset) (*Engine, error) {
	env, err := cel.NewEnv(
		cel.Variable("Gender", cel.IntType),
		cel.Variable("Married", cel.IntType),
		cel.Variable("Dependents", cel.IntType),
		cel.Variable("Education", cel.IntType),
		cel.Variable("SelfEmployed", cel.IntType),
		cel.Variable("PropertyArea", cel.IntType),
		cel.Variable("CreditHistory", cel.IntType),
		cel.Variable("ApplicantIncome", cel.DoubleType),
		cel.Variable("CoapplicantIncome", cel.DoubleType),
		cel.Variable("LoanAmount", cel.DoubleType),
		cel.Variable("LoanTerm", cel.DoubleType),
		cel.Variable("LoanToIncome", cel.DoubleType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	e := &Engine{rules: make([]compiledRule, 0, len(rs.Rules))}
	for _, r := range rs.Rules {
		ast, issues := env.Compile(r.Expression)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("rule %s: compile error: %w", r.ID, issues.Err())
		}
		prog, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("rule %s: program creation error: %w", r.ID, err)
		}
		e.rules = append(e.rules, compiledRule{rule: r, program: prog})
	}
	return e, nil
}

// Decide produces the verdict and reasons for one raw application.
//
// The encoded vector is padded and reordered to match the training
// columns (absent columns fill with 0), so a schema mismatch is never
// an error here. A failed classifier invocation is also non-fatal:
// the shortcut and the rules do not depend on it.
func (e *Engine) Decide(raw encode.RawApplication, model *tree.Classifier, columns []string) (*Decision, error) {
	enc, err := encode.EncodeApplication(raw)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	modelLabel := -1
	if model != nil {
		if label, err := model.Predict(enc.Vector(columns)); err == nil {
			modelLabel = label
		}
	}

	totalIncome := enc.Features[encode.ColApplicantIncome] + enc.Features[encode.ColCoapplicantIncome]
	if totalIncome >= enc.LoanAmount {
		return &Decision{
			Verdict:    Approved,
			Reasons:    []string{ReasonIncomeSufficient},
			ModelLabel: modelLabel,
		}, nil
	}

	facts := e.facts(enc)
	var reasons []string
	for _, cr := range e.rules {
		out, _, err := cr.program.Eval(facts)
		if err != nil {
			// Evaluation errors make the rule a non-match; the
			// remaining rules still run.
			continue
		}
		if matched, ok := out.Value().(bool); ok && matched {
			reasons = append(reasons, cr.rule.Reason)
		}
	}

	if len(reasons) > 0 {
		return &Decision{Verdict: NotApproved, Reasons: reasons, ModelLabel: modelLabel}, nil
	}
	return &Decision{
		Verdict:    Approved,
		Reasons:    []string{ReasonMeetsAllCriteria},
		ModelLabel: modelLabel,
	}, nil
}

func (e *Engine) facts(enc *encode.EncodedApplication) map[string]any {
	f := enc.Features
	return map[string]any{
		"Gender":            int64(f[encode.ColGender]),
		"Married":           int64(f[encode.ColMarried]),
		"Dependents":        int64(f[encode.ColDependents]),
		"Education":         int64(f[encode.ColEducation]),
		"SelfEmployed":      int64(f[encode.ColSelfEmployed]),
		"PropertyArea":      int64(f[encode.ColPropertyArea]),
		"CreditHistory":     int64(f[encode.ColCreditHistory]),
		"ApplicantIncome":   f[encode.ColApplicantIncome],
		"CoapplicantIncome": f[encode.ColCoapplicantIncome],
		"LoanAmount":        enc.LoanAmount,
		"LoanTerm":          f[encode.ColLoanTerm],
		"LoanToIncome":      f[encode.ColLoanToIncome],
	}
}
