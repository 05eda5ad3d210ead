package calib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limiar/internal/metrics"
)

func TestArtifactSaveLoad(t *testing.T) {
	cm := metrics.ConfusionMatrix{TN: 70, FP: 5, FN: 3, TP: 22}
	art := New(0.38, "prevalencia", "RandomForest", cm)
	assert.InDelta(t, cm.Precision(), art.Precision, 1e-12)
	assert.InDelta(t, cm.Recall(), art.Recall, 1e-12)
	assert.InDelta(t, cm.F1(), art.F1, 1e-12)

	path := filepath.Join(t.TempDir(), "calibracao.json")
	require.NoError(t, art.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, art.Threshold, got.Threshold)
	assert.Equal(t, art.Heuristic, got.Heuristic)
	assert.Equal(t, art.Confusion, got.Confusion)
}

func TestArtifactValidate(t *testing.T) {
	assert.Error(t, Artifact{Threshold: 1.5, Heuristic: "f1"}.Validate())
	assert.Error(t, Artifact{Threshold: -0.1, Heuristic: "f1"}.Validate())
	assert.Error(t, Artifact{Threshold: 0.5}.Validate())
	assert.NoError(t, Artifact{Threshold: 0.5, Heuristic: "manual"}.Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nao_existe.json"))
	assert.Error(t, err)
}
