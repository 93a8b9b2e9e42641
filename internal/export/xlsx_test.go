package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/akverma/loanlens/internal/history"
)

func TestDecisionsXLSX(t *testing.T) {
	records := []*history.Record{
		{
			ID:              "abc",
			CreatedAt:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			Gender:          "Female",
			ApplicantIncome: 42000,
			LoanAmount:      120000,
			Verdict:         "Not Approved",
			Reasons:         []string{"Bad Credit History", "Loan too high compared to Income"},
			ModelLabel:      0,
		},
	}

	data, err := DecisionsXLSX(records)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", got)

	got, err = f.GetCellValue(sheet, "N2")
	require.NoError(t, err)
	assert.Equal(t, "Not Approved", got)

	got, err = f.GetCellValue(sheet, "O2")
	require.NoError(t, err)
	assert.Equal(t, "Bad Credit History, Loan too high compared to Income", got)
}

func TestDecisionsXLSX_Empty(t *testing.T) {
	data, err := DecisionsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header row only")
}
