package dataset

import (
	"math"
	"testing"

	"github.com/akverma/loanlens/internal/encode"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{
			"Gender", "Married", "Dependents", "Education", "Self_Employed",
			"Property_Area", "ApplicantIncome", "CoapplicantIncome",
			"LoanAmount", "Loan_Amount_Term", "Credit_History", "Loan_Status",
		},
		Rows: [][]string{
			{"Male", "Yes", "0", "Graduate", "No", "Urban", "50000", "0", "120", "360", "1", "Y"},
			{"Female", "No", "3+", "Not Graduate", "Yes", "Rural", "12000", "0", "200", "180", "0", "N"},
		},
	}
}

func TestFillPlan_Complete(t *testing.T) {
	if plan := FillPlan(sampleTable().Columns); len(plan) != 0 {
		t.Errorf("complete table should need no fills, got %v", plan)
	}
}

func TestFillPlan_Defaults(t *testing.T) {
	plan := FillPlan([]string{"ApplicantIncome", "LoanAmount"})

	want := map[string]string{
		"Gender":            "Unknown",
		"Married":           "Unknown",
		"Dependents":        "Unknown",
		"Education":         "Unknown",
		"Self_Employed":     "Unknown",
		"Property_Area":     "Unknown",
		"CoapplicantIncome": "10000",
		"Loan_Amount_Term":  "0",
		"Credit_History":    "1",
		"Loan_Status":       "N",
	}
	got := make(map[string]string, len(plan))
	for _, f := range plan {
		got[f.Column] = f.Value
	}
	if len(got) != len(want) {
		t.Fatalf("fill plan covers %d columns, want %d: %v", len(got), len(want), got)
	}
	for col, val := range want {
		if got[col] != val {
			t.Errorf("fill for %s = %q, want %q", col, got[col], val)
		}
	}
}

func TestPreprocess_SchemaAndOrder(t *testing.T) {
	frame, y, err := Preprocess(sampleTable())
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}

	if len(frame.Columns) != len(encode.FeatureColumns) {
		t.Fatalf("got %d columns, want %d", len(frame.Columns), len(encode.FeatureColumns))
	}
	for i, c := range encode.FeatureColumns {
		if frame.Columns[i] != c {
			t.Errorf("column %d = %s, want %s", i, frame.Columns[i], c)
		}
	}
	for _, c := range frame.Columns {
		if c == encode.ColLoanAmount {
			t.Error("raw LoanAmount must be dropped from the frame")
		}
	}
	if len(y) != 2 || y[0] != 1 || y[1] != 0 {
		t.Errorf("labels = %v, want [1 0]", y)
	}
}

func TestPreprocess_RowValues(t *testing.T) {
	frame, _, err := Preprocess(sampleTable())
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}

	// Row 0: incomes above floor survive; 120 thousand → 120000.
	row := frame.Rows[0]
	col := func(name string) float64 {
		for i, c := range frame.Columns {
			if c == name {
				return row[i]
			}
		}
		t.Fatalf("no column %s", name)
		return 0
	}

	if got := col(encode.ColApplicantIncome); got != 50000 {
		t.Errorf("ApplicantIncome = %v, want 50000", got)
	}
	// Coapplicant 0 floors to 10000.
	if got := col(encode.ColCoapplicantIncome); got != 10000 {
		t.Errorf("CoapplicantIncome = %v, want 10000", got)
	}
	wantRatio := 120000.0 / (50000 + 10000 + 1)
	if got := col(encode.ColLoanToIncome); math.Abs(got-wantRatio) > 1e-12 {
		t.Errorf("Loan_to_Income = %v, want %v", got, wantRatio)
	}
	if got := col(encode.ColPropertyArea); got != 2 {
		t.Errorf("Property_Area = %v, want 2", got)
	}
}

func TestPreprocess_MissingCreditHistoryColumn(t *testing.T) {
	tbl := sampleTable()
	// Drop the Credit_History column entirely.
	idx := tbl.Column("Credit_History")
	tbl.Columns = append(tbl.Columns[:idx], tbl.Columns[idx+1:]...)
	for i, row := range tbl.Rows {
		tbl.Rows[i] = append(row[:idx], row[idx+1:]...)
	}

	frame, _, err := Preprocess(tbl)
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	for _, v := range frame.Column(encode.ColCreditHistory) {
		if v != 1 {
			t.Fatalf("Credit_History = %v, want 1 for every row", v)
		}
	}
}

func TestPreprocess_MedianImputation(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows = append(tbl.Rows,
		[]string{"Male", "No", "1", "Graduate", "No", "Urban", "30000", "0", "", "360", "1", "Y"},
	)
	// LoanAmount present values are 120 and 200; the gap fills with 160.
	frame, _, err := Preprocess(tbl)
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}

	lti := frame.Column(encode.ColLoanToIncome)
	want := 160000.0 / (30000 + 10000 + 1)
	if math.Abs(lti[2]-want) > 1e-12 {
		t.Errorf("imputed row ratio = %v, want %v", lti[2], want)
	}
}

func TestPreprocess_UnknownCategoryNeverFails(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows[0][0] = "Nonbinary"
	tbl.Rows[0][5] = "Offworld"

	frame, _, err := Preprocess(tbl)
	if err != nil {
		t.Fatalf("unknown categories must not fail: %v", err)
	}
	if got := frame.Rows[0][0]; got != encode.Unknown {
		t.Errorf("unknown gender code = %v, want -1", got)
	}
	if got := frame.Column(encode.ColPropertyArea)[0]; got != encode.Unknown {
		t.Errorf("unknown property area code = %v, want -1", got)
	}
}

func TestPreprocess_BadLabelFailsFast(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows[1][11] = "Maybe"

	if _, _, err := Preprocess(tbl); err == nil {
		t.Fatal("expected error for Loan_Status outside {N, Y}")
	}
}
