package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is a raw tabular dataset as read from disk: normalized header
// names plus string cells. Empty cells mean missing values.
type Table struct {
	Columns []string
	Rows    [][]string
}

// LoadError reports a dataset that could not be loaded or parsed. The
// pipeline halts on it; no partial dataset is ever used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads a CSV file into a Table. Header names are normalized:
// surrounding whitespace trimmed and internal spaces replaced with
// underscores.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("empty file")}
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = NormalizeColumn(name)
	}

	return &Table{Columns: columns, Rows: records[1:]}, nil
}

// NormalizeColumn trims surrounding whitespace and replaces internal
// spaces with underscores, so " Loan Amount Term " and
// "Loan_Amount_Term" address the same column.
func NormalizeColumn(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell value at (row, col index), or "" when
// the row is ragged.
func (t *Table) Cell(row int, col int) string {
	if col < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}
