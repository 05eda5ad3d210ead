package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDataset(n, positives int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i)}
		if i < positives { y[i] = 1 }
	}
	return X, y
}

func TestSplitSizes(t *testing.T) {
	X, y := makeDataset(100, 40)
	Xtr, Xte, ytr, yte, err := Split(X, y, 0.2, 7)
	require.NoError(t, err)

	assert.Len(t, Xtr, 80)
	assert.Len(t, Xte, 20)
	assert.Len(t, ytr, 80)
	assert.Len(t, yte, 20)
}

func TestSplitStratified(t *testing.T) {
	X, y := makeDataset(100, 40)
	_, _, ytr, yte, err := Split(X, y, 0.2, 7)
	require.NoError(t, err)

	posTr, posTe := 0, 0
	for _, v := range ytr { posTr += v }
	for _, v := range yte { posTe += v }
	assert.Equal(t, 32, posTr)
	assert.Equal(t, 8, posTe)
}

func TestSplitDeterministicForSeed(t *testing.T) {
	X, y := makeDataset(200, 60)

	Xa, _, ya, _, err := Split(X, y, 0.2, 42)
	require.NoError(t, err)
	Xb, _, yb, _, err := Split(X, y, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, Xa, Xb)
	assert.Equal(t, ya, yb)

	Xc, _, _, _, err := Split(X, y, 0.2, 43)
	require.NoError(t, err)
	assert.NotEqual(t, Xa, Xc, "seeds diferentes devem embaralhar diferente")
}

func TestSplitValidation(t *testing.T) {
	_, _, _, _, err := Split(nil, nil, 0.2, 1)
	assert.Error(t, err)

	X, y := makeDataset(10, 4)
	_, _, _, _, err = Split(X, y[:5], 0.2, 1)
	assert.Error(t, err)

	_, _, _, _, err = Split(X, y, 0, 1)
	assert.Error(t, err)
	_, _, _, _, err = Split(X, y, 1, 1)
	assert.Error(t, err)
}
