package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loans.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoad_NormalizesHeaders(t *testing.T) {
	path := writeCSV(t, " Gender , Loan Amount Term ,ApplicantIncome\nMale,360,50000\n")

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"Gender", "Loan_Amount_Term", "ApplicantIncome"}
	for i, c := range want {
		if tbl.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, tbl.Columns[i], c)
		}
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tbl.Rows))
	}
	if got := tbl.Cell(0, tbl.Column("Gender")); got != "Male" {
		t.Errorf("cell = %q, want Male", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want *LoadError", err)
	}
}

func TestLoad_MalformedCSV(t *testing.T) {
	path := writeCSV(t, "a,b\n\"unterminated\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed CSV")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestCell_RaggedRow(t *testing.T) {
	tbl := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"only"}}}
	if got := tbl.Cell(0, 1); got != "" {
		t.Errorf("ragged cell = %q, want empty", got)
	}
	if got := tbl.Cell(0, -1); got != "" {
		t.Errorf("unknown column cell = %q, want empty", got)
	}
}
