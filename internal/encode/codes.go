package encode

import "strconv"

// Canonical column names after header normalization.
const (
	ColGender            = "Gender"
	ColMarried           = "Married"
	ColDependents        = "Dependents"
	ColEducation         = "Education"
	ColSelfEmployed      = "Self_Employed"
	ColPropertyArea      = "Property_Area"
	ColApplicantIncome   = "ApplicantIncome"
	ColCoapplicantIncome = "CoapplicantIncome"
	ColLoanAmount        = "LoanAmount"
	ColLoanTerm          = "Loan_Amount_Term"
	ColCreditHistory     = "Credit_History"
	ColLoanStatus        = "Loan_Status"
	ColLoanToIncome      = "Loan_to_Income"
)

// Unknown is the reserved code for missing or unrecognized labels.
const Unknown = -1

// CategoricalColumns lists the categorical columns expected in a raw
// dataset, in canonical order.
var CategoricalColumns = []string{
	ColGender,
	ColMarried,
	ColDependents,
	ColEducation,
	ColSelfEmployed,
	ColPropertyArea,
}

// NumericColumns lists the numeric columns expected in a raw dataset.
var NumericColumns = []string{
	ColApplicantIncome,
	ColCoapplicantIncome,
	ColLoanAmount,
	ColLoanTerm,
	ColCreditHistory,
}

// FeatureColumns is the training schema: the exact column set and
// order the classifier is fit on. Raw LoanAmount is excluded; the
// engineered Loan_to_Income ratio stands in for loan size.
var FeatureColumns = []string{
	ColGender,
	ColMarried,
	ColDependents,
	ColEducation,
	ColSelfEmployed,
	ColPropertyArea,
	ColApplicantIncome,
	ColCoapplicantIncome,
	ColLoanTerm,
	ColCreditHistory,
	ColLoanToIncome,
}

// Fixed label → code tables. Never mutated after process start.
var (
	genderCodes = map[string]int{
		"Male":   1,
		"Female": 0,
	}
	marriedCodes = map[string]int{
		"Yes": 1,
		"No":  0,
	}
	dependentsCodes = map[string]int{
		"0":  0,
		"1":  1,
		"2":  2,
		"3+": 3,
	}
	educationCodes = map[string]int{
		"Graduate":     1,
		"Not Graduate": 0,
	}
	selfEmployedCodes = map[string]int{
		"Yes": 1,
		"No":  0,
	}
	propertyAreaCodes = map[string]int{
		"Urban":     2,
		"Semiurban": 1,
		"Rural":     0,
	}
	creditHistoryCodes = map[string]int{
		"Good": 1,
		"Bad":  0,
	}
)

var codeTables = map[string]map[string]int{
	ColGender:        genderCodes,
	ColMarried:       marriedCodes,
	ColDependents:    dependentsCodes,
	ColEducation:     educationCodes,
	ColSelfEmployed:  selfEmployedCodes,
	ColPropertyArea:  propertyAreaCodes,
	ColCreditHistory: creditHistoryCodes,
}

// CodeFor maps a categorical label to its fixed integer code. Labels
// absent from the table (including the empty string) map to Unknown.
// An unrecognized category is a supported code, not an error.
func CodeFor(column, label string) int {
	table, ok := codeTables[column]
	if !ok {
		return Unknown
	}
	if code, ok := table[label]; ok {
		return code
	}
	return Unknown
}

// CreditCode resolves a credit-history value that may arrive either as
// a label ("Good"/"Bad") or as a numeric cell from a dataset ("1"/"0").
func CreditCode(value string) int {
	if code, ok := creditHistoryCodes[value]; ok {
		return code
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return int(v)
	}
	return Unknown
}

// Labels returns the supported labels for a categorical column, in
// code order. Used by form widgets to populate choices.
func Labels(column string) []string {
	switch column {
	case ColGender:
		return []string{"Male", "Female"}
	case ColMarried:
		return []string{"Yes", "No"}
	case ColDependents:
		return []string{"0", "1", "2", "3+"}
	case ColEducation:
		return []string{"Graduate", "Not Graduate"}
	case ColSelfEmployed:
		return []string{"Yes", "No"}
	case ColPropertyArea:
		return []string{"Urban", "Semiurban", "Rural"}
	case ColCreditHistory:
		return []string{"Good", "Bad"}
	default:
		return nil
	}
}
