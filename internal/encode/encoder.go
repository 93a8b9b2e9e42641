package encode

import (
	"fmt"
	"strconv"
	"strings"
)

// RawApplication maps canonical field names to raw values as they
// arrive from a CSV row, a form widget, or a request payload. An
// absent key or empty string means the field is missing.
type RawApplication map[string]string

// FieldError reports a raw field that a downstream rule requires but
// that is absent or non-numeric.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("field %s is missing", e.Field)
	}
	return fmt.Sprintf("field %s has non-numeric value %q", e.Field, e.Value)
}

// EncodedApplication is the inference-path encoding of a single
// application: fixed category codes plus raw numeric values and the
// raw loan-to-income ratio. The dataset-path floors and rescaling do
// not apply here; rules and the trained model see the applicant's
// figures as entered.
type EncodedApplication struct {
	// Features holds the encoded values keyed by training column name.
	Features map[string]float64
	// LoanAmount is kept separately for the rule set; it is not a
	// training column.
	LoanAmount float64
}

// RescaleLoanAmount converts a dataset loan amount given in thousands
// to an absolute figure, with 50000 as a floor for degenerate inputs.
func RescaleLoanAmount(v float64) float64 {
	if r := v * 1000; r > 50000 {
		return r
	}
	return 50000
}

// FloorIncome floors an income at 10000 so zero-income records cannot
// feed an unrealistic loan-to-income ratio.
func FloorIncome(v float64) float64 {
	if v > 10000 {
		return v
	}
	return 10000
}

// FloorTerm floors a loan term at 12 months.
func FloorTerm(v float64) float64 {
	if v > 12 {
		return v
	}
	return 12
}

// LoanToIncome derives the loan-to-income ratio. The +1 in the
// denominator guards against both incomes being zero.
func LoanToIncome(loan, applicant, coapplicant float64) float64 {
	return loan / (applicant + coapplicant + 1)
}

// Application assembles a RawApplication from individual form values.
// Numeric fields are rendered with strconv so the raw map stays the
// single wire format between the UI, CLI flags, and the engine.
func Application(gender, married, dependents, education, selfEmployed, propertyArea, credit string, applicantIncome, coapplicantIncome, loanAmount, loanTerm float64) RawApplication {
	return RawApplication{
		ColGender:            gender,
		ColMarried:           married,
		ColDependents:        dependents,
		ColEducation:         education,
		ColSelfEmployed:      selfEmployed,
		ColPropertyArea:      propertyArea,
		ColCreditHistory:     credit,
		ColApplicantIncome:   formatNumber(applicantIncome),
		ColCoapplicantIncome: formatNumber(coapplicantIncome),
		ColLoanAmount:        formatNumber(loanAmount),
		ColLoanTerm:          formatNumber(loanTerm),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EncodeApplication encodes a single raw application for inference.
// Fields required by the rule set (applicant income, loan amount,
// credit history, dependents, education) must be present, and numeric
// fields must parse; otherwise a *FieldError is returned. Optional
// fields default: coapplicant income and loan term to 0, the remaining
// categoricals to the Unknown code.
func EncodeApplication(raw RawApplication) (*EncodedApplication, error) {
	applicantIncome, err := requireNumber(raw, ColApplicantIncome)
	if err != nil {
		return nil, err
	}
	loanAmount, err := requireNumber(raw, ColLoanAmount)
	if err != nil {
		return nil, err
	}
	coapplicantIncome, err := optionalNumber(raw, ColCoapplicantIncome)
	if err != nil {
		return nil, err
	}
	loanTerm, err := optionalNumber(raw, ColLoanTerm)
	if err != nil {
		return nil, err
	}
	for _, col := range []string{ColCreditHistory, ColDependents, ColEducation} {
		if strings.TrimSpace(raw[col]) == "" {
			return nil, &FieldError{Field: col}
		}
	}

	features := map[string]float64{
		ColGender:            float64(CodeFor(ColGender, raw[ColGender])),
		ColMarried:           float64(CodeFor(ColMarried, raw[ColMarried])),
		ColDependents:        float64(CodeFor(ColDependents, raw[ColDependents])),
		ColEducation:         float64(CodeFor(ColEducation, raw[ColEducation])),
		ColSelfEmployed:      float64(CodeFor(ColSelfEmployed, raw[ColSelfEmployed])),
		ColPropertyArea:      float64(CodeFor(ColPropertyArea, raw[ColPropertyArea])),
		ColCreditHistory:     float64(CreditCode(raw[ColCreditHistory])),
		ColApplicantIncome:   applicantIncome,
		ColCoapplicantIncome: coapplicantIncome,
		ColLoanTerm:          loanTerm,
		ColLoanToIncome:      LoanToIncome(loanAmount, applicantIncome, coapplicantIncome),
	}

	return &EncodedApplication{Features: features, LoanAmount: loanAmount}, nil
}

// Vector lays the encoded features out in the given column order.
// Columns present in training but absent from this encoding are filled
// with 0, so a schema mismatch is resolved by padding rather than
// treated as an error.
func (e *EncodedApplication) Vector(columns []string) []float64 {
	vec := make([]float64, len(columns))
	for i, col := range columns {
		vec[i] = e.Features[col] // missing → 0
	}
	return vec
}

func requireNumber(raw RawApplication, field string) (float64, error) {
	s := strings.TrimSpace(raw[field])
	if s == "" {
		return 0, &FieldError{Field: field}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: s}
	}
	return v, nil
}

func optionalNumber(raw RawApplication, field string) (float64, error) {
	s := strings.TrimSpace(raw[field])
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: s}
	}
	return v, nil
}
