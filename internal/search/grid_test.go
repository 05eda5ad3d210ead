package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limiar/internal/models"
)

// stubModel responde tudo positivo ou tudo negativo conforme a combinação,
// o que torna o recall da validação cruzada 1 ou 0 de forma previsível.
type stubModel struct {
	positive bool
}

func (s *stubModel) Fit(X [][]float64, y []int) error { return nil }
func (s *stubModel) Predict(X [][]float64, threshold float64) []int {
	out := make([]int, len(X))
	if s.positive {
		for i := range out { out[i] = 1 }
	}
	return out
}
func (s *stubModel) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range out {
		if s.positive { out[i] = 1 }
	}
	return out
}
func (s *stubModel) Name() string { return "Stub" }

func smallData(n int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i)}
		y[i] = i % 2
	}
	return X, y
}

func TestDefaultGridSize(t *testing.T) {
	combos := DefaultGrid().combos()
	assert.Len(t, combos, 36, "3 tamanhos x 3 folhas x 4 alphas")
}

func TestGridSearchPicksWinningCombo(t *testing.T) {
	X, y := smallData(50)
	res, err := GridSearch(X, y, DefaultGrid(), 5, 42, func(p Params) models.Model {
		return &stubModel{positive: p.NEstimators == 150}
	})
	require.NoError(t, err)

	assert.Equal(t, 150, res.Best.NEstimators)
	assert.Equal(t, 2, res.Best.MinSamplesLeaf, "empate resolve pela primeira combinação da grade")
	assert.Equal(t, 0.0, res.Best.PruneAlpha)
	assert.InDelta(t, 1.0, res.BestScore, 1e-12)
	require.NotNil(t, res.Model)
	assert.Equal(t, "Stub", res.Model.Name())
}

func TestGridSearchRefitsOnFullTraining(t *testing.T) {
	X, y := smallData(30)
	var lastFitSize int
	_, err := GridSearch(X, y, Grid{NEstimators: []int{10}, MinSamplesLeaf: []int{1}, PruneAlphas: []float64{0}}, 3, 1, func(p Params) models.Model {
		return &fitRecorder{size: &lastFitSize}
	})
	require.NoError(t, err)
	assert.Equal(t, 30, lastFitSize, "o modelo final é reajustado com o treino completo")
}

type fitRecorder struct {
	size *int
}

func (f *fitRecorder) Fit(X [][]float64, y []int) error { *f.size = len(X); return nil }
func (f *fitRecorder) Predict(X [][]float64, threshold float64) []int { return make([]int, len(X)) }
func (f *fitRecorder) PredictProba(X [][]float64) []float64 { return make([]float64, len(X)) }
func (f *fitRecorder) Name() string { return "FitRecorder" }

func TestGridSearchValidation(t *testing.T) {
	X, y := smallData(20)
	build := func(p Params) models.Model { return &stubModel{} }

	_, err := GridSearch(nil, nil, DefaultGrid(), 5, 1, build)
	assert.Error(t, err)

	_, err = GridSearch(X, y[:10], DefaultGrid(), 5, 1, build)
	assert.Error(t, err)

	_, err = GridSearch(X, y, DefaultGrid(), 1, 1, build)
	assert.Error(t, err)

	_, err = GridSearch(X, y, Grid{}, 5, 1, build)
	assert.Error(t, err)
}
