package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akverma/loanlens/internal/dataset"
	"github.com/akverma/loanlens/internal/encode"
)

func writeSampleCSV(t *testing.T, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Gender,Married,Dependents,Education,Self_Employed,Property_Area,ApplicantIncome,CoapplicantIncome,LoanAmount,Loan_Amount_Term,Credit_History,Loan_Status\n")
	for i := 0; i < rows; i++ {
		// Alternate between an easy approval profile and an easy denial.
		if i%2 == 0 {
			fmt.Fprintf(&b, "Male,Yes,0,Graduate,No,Urban,%d,20000,100,360,1,Y\n", 60000+i)
		} else {
			fmt.Fprintf(&b, "Female,No,3+,Not Graduate,Yes,Rural,%d,0,600,180,0,N\n", 12000+i)
		}
	}

	path := filepath.Join(t.TempDir(), "loans.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeSampleCSV(t, 50)

	sess, err := Run(DefaultConfig(path), nil)
	require.NoError(t, err)

	assert.Equal(t, encode.FeatureColumns, sess.Columns)
	assert.Equal(t, 50, sess.Rows)
	assert.Equal(t, 40, sess.TrainRows)
	assert.Equal(t, 10, sess.TestRows)
	require.NotNil(t, sess.Model)

	// The two profiles are perfectly separable, so the held-out scores
	// should be perfect as well.
	assert.Equal(t, 1.0, sess.Metrics.Accuracy)
	assert.Equal(t, 1.0, sess.Metrics.F1)
}

func TestRun_Reproducible(t *testing.T) {
	path := writeSampleCSV(t, 30)

	a, err := Run(DefaultConfig(path), nil)
	require.NoError(t, err)
	b, err := Run(DefaultConfig(path), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Metrics, b.Metrics)
	assert.Equal(t, a.Model.Root, b.Model.Root)
}

func TestRun_MissingFileHalts(t *testing.T) {
	_, err := Run(DefaultConfig(filepath.Join(t.TempDir(), "absent.csv")), nil)

	var le *dataset.LoadError
	assert.ErrorAs(t, err, &le)
}
