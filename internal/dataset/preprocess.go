package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/akverma/loanlens/internal/encode"
)

// Frame is a preprocessed numeric dataset: the training schema columns
// in canonical order plus one row per application.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

// ColumnFill describes a deterministic fill for a column absent from a
// raw dataset.
type ColumnFill struct {
	Column string
	Value  string
}

// FillPlan computes the columns the preprocessor expects but the
// dataset lacks, with the default each one is filled with:
// categoricals get "Unknown", Credit_History assumes good credit,
// loan figures default to 0, incomes to the 10000 income floor, and a
// missing target is fabricated as "N" (callers must not trust the
// labels in that case). Pure function of the present column set.
func FillPlan(present []string) []ColumnFill {
	have := make(map[string]bool, len(present))
	for _, c := range present {
		have[c] = true
	}

	var plan []ColumnFill
	for _, c := range encode.CategoricalColumns {
		if !have[c] {
			plan = append(plan, ColumnFill{Column: c, Value: "Unknown"})
		}
	}
	for _, c := range encode.NumericColumns {
		if have[c] {
			continue
		}
		switch c {
		case encode.ColCreditHistory:
			plan = append(plan, ColumnFill{Column: c, Value: "1"})
		case encode.ColLoanAmount, encode.ColLoanTerm:
			plan = append(plan, ColumnFill{Column: c, Value: "0"})
		default:
			plan = append(plan, ColumnFill{Column: c, Value: "10000"})
		}
	}
	if !have[encode.ColLoanStatus] {
		plan = append(plan, ColumnFill{Column: encode.ColLoanStatus, Value: "N"})
	}
	return plan
}

// Preprocess turns a raw table into the encoded feature frame and the
// numeric target labels (N→0, Y→1). Missing columns are synthesized
// per FillPlan, categorical cells map through the fixed code tables
// (unknown labels → -1), numeric gaps are filled with the dataset-wide
// column median, then the per-row floors, loan rescaling, and the
// Loan_to_Income derivation apply. Columns outside the expected schema
// are dropped; the output column order is always the training schema.
func Preprocess(t *Table) (*Frame, []int, error) {
	fills := make(map[string]string)
	for _, f := range FillPlan(t.Columns) {
		fills[f.Column] = f.Value
	}

	cell := func(row int, col string) string {
		if v, ok := fills[col]; ok {
			return v
		}
		return t.Cell(row, t.Column(col))
	}

	n := len(t.Rows)

	y := make([]int, n)
	for i := 0; i < n; i++ {
		switch v := cell(i, encode.ColLoanStatus); v {
		case "N":
			y[i] = 0
		case "Y":
			y[i] = 1
		default:
			return nil, nil, fmt.Errorf("row %d: unsupported %s value %q (want Y or N)", i+1, encode.ColLoanStatus, v)
		}
	}

	// Parse the numeric columns first; empty or unparsable cells
	// become NaN and are median-imputed below.
	numeric := make(map[string][]float64, len(encode.NumericColumns))
	for _, col := range encode.NumericColumns {
		vals := make([]float64, n)
		for i := 0; i < n; i++ {
			s := cell(i, col)
			if s == "" {
				vals[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				vals[i] = math.NaN()
				continue
			}
			vals[i] = v
		}
		imputeMedian(vals)
		numeric[col] = vals
	}

	frame := &Frame{
		Columns: append([]string(nil), encode.FeatureColumns...),
		Rows:    make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		applicant := encode.FloorIncome(numeric[encode.ColApplicantIncome][i])
		coapplicant := encode.FloorIncome(numeric[encode.ColCoapplicantIncome][i])
		loan := encode.RescaleLoanAmount(numeric[encode.ColLoanAmount][i])

		frame.Rows[i] = []float64{
			float64(encode.CodeFor(encode.ColGender, cell(i, encode.ColGender))),
			float64(encode.CodeFor(encode.ColMarried, cell(i, encode.ColMarried))),
			float64(encode.CodeFor(encode.ColDependents, cell(i, encode.ColDependents))),
			float64(encode.CodeFor(encode.ColEducation, cell(i, encode.ColEducation))),
			float64(encode.CodeFor(encode.ColSelfEmployed, cell(i, encode.ColSelfEmployed))),
			float64(encode.CodeFor(encode.ColPropertyArea, cell(i, encode.ColPropertyArea))),
			applicant,
			coapplicant,
			encode.FloorTerm(numeric[encode.ColLoanTerm][i]),
			numeric[encode.ColCreditHistory][i],
			encode.LoanToIncome(loan, applicant, coapplicant),
		}
	}

	return frame, y, nil
}

// imputeMedian replaces NaN entries with the median of the non-NaN
// entries. This needs the full column, which is why it lives here and
// not in the single-record encoder. A column with no numeric entries
// at all is filled with 0.
func imputeMedian(vals []float64) {
	present := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == len(vals) {
		return
	}

	var median float64
	if len(present) > 0 {
		sort.Float64s(present)
		mid := len(present) / 2
		if len(present)%2 == 1 {
			median = present[mid]
		} else {
			median = (present[mid-1] + present[mid]) / 2
		}
	}

	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = median
		}
	}
}

// Column returns the values of the named frame column, or nil.
func (f *Frame) Column(name string) []float64 {
	for i, c := range f.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(f.Rows))
		for r, row := range f.Rows {
			out[r] = row[i]
		}
		return out
	}
	return nil
}
