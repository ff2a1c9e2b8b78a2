package cli

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household/internal/household"
	"household/internal/report"
)

func TestIncomeText(t *testing.T) {
	out, _, err := execute(t, "income", "testdata/neward.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Charlotte Neward")
	assert.Contains(t, out, "0 (not counted)")
	assert.Contains(t, out, "Household income (2000 h/yr): 52000 USD")
	assert.NotContains(t, out, "In USD")
}

func TestIncomeConverted(t *testing.T) {
	out, _, err := execute(t, "--currency", "gbp", "income", "testdata/neward.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "In GBP: 26000 GBP")
}

func TestIncomeJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "--currency", "CAN", "income", "testdata/neward.yaml")
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 52000, r.Total)
	assert.Equal(t, int64(65000), r.Converted)
	assert.Len(t, r.Members, 4)
}

func TestIncomeMissingFile(t *testing.T) {
	_, _, err := execute(t, "income", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIncomeInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `members:
  - id: solo
    first_name: Solo
    last_name: Person
    age: 30
family:
  spouses: [solo]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, _, err := execute(t, "income", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, household.ErrInvalidDocument)
	assert.Contains(t, err.Error(), path)
}

func TestIncomeRequiresFile(t *testing.T) {
	_, _, err := execute(t, "income")
	assert.Error(t, err)
}
