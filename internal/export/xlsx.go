// Package export produces XLSX workbooks from the decision history so
// an analyst can take the log into a spreadsheet.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/akverma/loanlens/internal/history"
)

const sheet = "Decisions"

var headers = []string{
	"ID", "Decided At",
	"Gender", "Married", "Dependents", "Education", "Self Employed", "Property Area", "Credit History",
	"Applicant Income", "Coapplicant Income", "Loan Amount", "Loan Term",
	"Verdict", "Reasons", "Model Vote",
}

// DecisionsXLSX renders the given decision records as a workbook.
func DecisionsXLSX(records []*history.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header %s: %w", h, err)
		}
	}

	for r, rec := range records {
		values := []any{
			rec.ID, rec.CreatedAt.Format(time.RFC3339),
			rec.Gender, rec.Married, rec.Dependents, rec.Education, rec.SelfEmployed, rec.PropertyArea, rec.CreditHistory,
			rec.ApplicantIncome, rec.CoapplicantIncome, rec.LoanAmount, rec.LoanTerm,
			rec.Verdict, strings.Join(rec.Reasons, ", "), modelVote(rec.ModelLabel),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func modelVote(label int) string {
	switch label {
	case 0:
		return "Not Approved"
	case 1:
		return "Approved"
	default:
		return "n/a"
	}
}
