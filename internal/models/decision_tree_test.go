package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func separableData(n int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		v := float64(i) / float64(n)
		X[i] = []float64{v}
		if v >= 0.5 { y[i] = 1 }
	}
	return X, y
}

func TestDecisionTreeSeparable(t *testing.T) {
	X, y := separableData(100)
	dt := NewDecisionTree()
	dt.MaxDepth = 3
	dt.MinSamplesSplit = 2
	dt.MinSamplesLeaf = 1
	dt.MaxThresholdsPerFe = len(X) // todos os valores viram candidatos
	require.NoError(t, dt.Fit(X, y))

	pred := dt.Predict([][]float64{{0.1}, {0.9}}, 0.5)
	assert.Equal(t, []int{0, 1}, pred)

	proba := dt.PredictProba([][]float64{{0.1}, {0.9}})
	assert.Less(t, proba[0], 0.5)
	assert.GreaterOrEqual(t, proba[1], 0.5)
}

func TestDecisionTreePruneAlphaCollapsesTree(t *testing.T) {
	X, y := separableData(100)
	dt := NewDecisionTree()
	dt.MaxDepth = 3
	dt.MinSamplesSplit = 2
	dt.PruneAlpha = 0.5 // maior que qualquer redução de gini possível
	require.NoError(t, dt.Fit(X, y))

	require.NotNil(t, dt.Root)
	assert.True(t, dt.Root.IsLeaf)
	assert.InDelta(t, 0.5, dt.Root.ProbaLeaf, 1e-12)
}

func TestDecisionTreeMinSamplesLeaf(t *testing.T) {
	X, y := separableData(8)
	dt := NewDecisionTree()
	dt.MaxDepth = 3
	dt.MinSamplesSplit = 2
	dt.MinSamplesLeaf = 5
	require.NoError(t, dt.Fit(X, y))

	// nenhuma divisão deixa 5 amostras de cada lado com 8 no total
	require.NotNil(t, dt.Root)
	assert.True(t, dt.Root.IsLeaf)
}

func TestDecisionTreePredictThresholdMonotone(t *testing.T) {
	X, y := separableData(100)
	dt := NewDecisionTree()
	dt.MaxDepth = 3
	dt.MinSamplesSplit = 2
	dt.MaxThresholdsPerFe = len(X)
	require.NoError(t, dt.Fit(X, y))

	count := func(thr float64) int {
		out := dt.Predict(X, thr)
		c := 0
		for _, v := range out { c += v }
		return c
	}
	assert.GreaterOrEqual(t, count(0.2), count(0.8))
}

func TestRandomForestSeparable(t *testing.T) {
	X, y := separableData(200)
	rf := NewRandomForest()
	rf.NEstimators = 20
	rf.MaxDepth = 3
	rf.MinSamplesSplit = 2
	require.NoError(t, rf.Fit(X, y))
	require.Len(t, rf.Trees, 20)

	proba := rf.PredictProba([][]float64{{0.05}, {0.95}})
	assert.Greater(t, proba[1], proba[0])

	pred := rf.Predict([][]float64{{0.05}, {0.95}}, 0.5)
	assert.Equal(t, []int{0, 1}, pred)
}

func TestGradientBoostingSeparable(t *testing.T) {
	X, y := separableData(200)
	gb := NewGradientBoosting()
	gb.NEstimators = 30
	require.NoError(t, gb.Fit(X, y))

	proba := gb.PredictProba([][]float64{{0.05}, {0.95}})
	assert.Greater(t, proba[1], proba[0])
	for _, p := range proba {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestModelsImplementInterface(t *testing.T) {
	for _, m := range []Model{NewDecisionTree(), NewRandomForest(), NewBagging(), NewGradientBoosting()} {
		assert.NotEmpty(t, m.Name())
	}
}
