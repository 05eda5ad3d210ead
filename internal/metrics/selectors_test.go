package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrevalenceThreshold(t *testing.T) {
	y := make([]int, 100)
	for i := 0; i < 62; i++ { y[i] = 1 }
	thr, err := PrevalenceThreshold(y)
	require.NoError(t, err)
	assert.InDelta(t, 0.38, thr, 1e-12)

	_, err = PrevalenceThreshold(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBestF1ThresholdUniquePeak(t *testing.T) {
	pr := &PRPoints{
		Precision:  []float64{0.2, 0.9, 0.7, 1},
		Recall:     []float64{1, 0.6, 0.3, 0},
		Thresholds: []float64{0.1, 0.4, 0.7},
	}
	thr, f1, err := BestF1Threshold(pr)
	require.NoError(t, err)
	assert.Equal(t, 0.4, thr)
	assert.InDelta(t, 0.72, f1, 1e-12)
}

func TestBestF1ThresholdTieFirstWins(t *testing.T) {
	pr := &PRPoints{
		Precision:  []float64{0.2, 0.9, 0.9, 0, 1},
		Recall:     []float64{1, 0.6, 0.6, 0, 0},
		Thresholds: []float64{0.1, 0.4, 0.6, 0.9},
	}
	thr, f1, err := BestF1Threshold(pr)
	require.NoError(t, err)
	assert.Equal(t, 0.4, thr, "empate deve devolver o primeiro na ordem da curva")
	assert.InDelta(t, 0.72, f1, 1e-12)
}

func TestBestF1ThresholdSkipsUndefined(t *testing.T) {
	pr := &PRPoints{
		Precision:  []float64{0, 0.5, 1},
		Recall:     []float64{0, 0.5, 0},
		Thresholds: []float64{0.3, 0.6},
	}
	thr, f1, err := BestF1Threshold(pr)
	require.NoError(t, err)
	assert.Equal(t, 0.6, thr)
	assert.InDelta(t, 0.5, f1, 1e-12)

	all0 := &PRPoints{
		Precision:  []float64{0, 1},
		Recall:     []float64{0, 0},
		Thresholds: []float64{0.5},
	}
	_, _, err = BestF1Threshold(all0)
	assert.ErrorIs(t, err, ErrNoQualifying)
}

func TestBestF1ThresholdEmpty(t *testing.T) {
	_, _, err := BestF1Threshold(nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, _, err = BestF1Threshold(&PRPoints{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestClosestToCornerThreshold(t *testing.T) {
	roc := &ROCPoints{
		TPR:        []float64{0, 0.6, 0.9, 1},
		FPR:        []float64{0, 0.05, 0.3, 1},
		Thresholds: []float64{math.Inf(1), 0.7, 0.4, 0.1},
	}
	thr, err := ClosestToCornerThreshold(roc)
	require.NoError(t, err)
	assert.Equal(t, 0.4, thr)
}

func TestClosestToCornerThresholdEmpty(t *testing.T) {
	_, err := ClosestToCornerThreshold(nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = ClosestToCornerThreshold(&ROCPoints{Thresholds: []float64{math.Inf(1)}})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRecallFloorThreshold(t *testing.T) {
	pr := &PRPoints{
		Precision:  []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1},
		Recall:     []float64{0.99, 0.97, 0.95, 0.90, 0.80, 0},
		Thresholds: []float64{0.1, 0.2, 0.3, 0.4, 0.5},
	}
	thr, err := RecallFloorThreshold(pr, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.3, thr, "último ponto que ainda atinge o piso de recall")
}

func TestRecallFloorThresholdNoQualifying(t *testing.T) {
	pr := &PRPoints{
		Precision:  []float64{0.5, 1},
		Recall:     []float64{0.6, 0},
		Thresholds: []float64{0.4},
	}
	_, err := RecallFloorThreshold(pr, 0.95)
	assert.ErrorIs(t, err, ErrNoQualifying)
}

func TestRecallFloorThresholdValidation(t *testing.T) {
	_, err := RecallFloorThreshold(nil, 0.95)
	assert.ErrorIs(t, err, ErrEmpty)

	pr := &PRPoints{Precision: []float64{1, 1}, Recall: []float64{1, 0}, Thresholds: []float64{0.5}}
	_, err = RecallFloorThreshold(pr, 0)
	assert.ErrorIs(t, err, ErrThresholdRange)
	_, err = RecallFloorThreshold(pr, 1.2)
	assert.ErrorIs(t, err, ErrThresholdRange)
}

// Qualquer corte devolvido por um seletor, reaplicado via Apply + Confusion,
// reproduz as métricas do ponto da curva de onde saiu.
func TestSelectorRoundTrip(t *testing.T) {
	pr, err := PRCurve(fixtureY, fixtureProbs)
	require.NoError(t, err)

	thr, f1, err := BestF1Threshold(pr)
	require.NoError(t, err)

	cm, err := ConfusionAt(fixtureY, fixtureProbs, thr)
	require.NoError(t, err)
	assert.InDelta(t, f1, cm.F1(), 1e-12)
	assert.Equal(t, len(fixtureY), cm.Total())

	roc, err := ROCCurve(fixtureY, fixtureProbs)
	require.NoError(t, err)
	cornerThr, err := ClosestToCornerThreshold(roc)
	require.NoError(t, err)
	cm2, err := ConfusionAt(fixtureY, fixtureProbs, cornerThr)
	require.NoError(t, err)
	assert.Equal(t, len(fixtureY), cm2.Total())
}
