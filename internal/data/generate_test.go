package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synthetic.csv")

	require.NoError(t, GenerateSyntheticExpenses(500, 0.08, 42, path))
	expenses, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, expenses, 500)

	pos := 0
	for _, e := range expenses {
		assert.GreaterOrEqual(t, e.Amount, 0.0)
		if e.Fraud == 1 { pos++ }
	}
	assert.Greater(t, pos, 0, "dataset precisa conter as duas classes")
	assert.Less(t, pos, 500)
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.csv")
	pathB := filepath.Join(dir, "b.csv")

	require.NoError(t, GenerateSyntheticExpenses(200, 0.08, 7, pathA))
	require.NoError(t, GenerateSyntheticExpenses(200, 0.08, 7, pathB))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b, "a mesma seed deve gerar o mesmo CSV")
}

func TestGenerateValidation(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, GenerateSyntheticExpenses(0, 0.08, 1, filepath.Join(dir, "x.csv")))
	assert.Error(t, GenerateSyntheticExpenses(10, -0.1, 1, filepath.Join(dir, "x.csv")))
}

func TestLoadCSVMissing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nao_existe.csv"))
	assert.Error(t, err)
}
