package calib

import (
    "encoding/json"
    "errors"
    "os"
    "path/filepath"
    "time"

    "limiar/internal/metrics"
)

// Artifact é o resultado da calibração: o corte escolhido, a heurística que o
// produziu e as métricas dele na partição de validação. É o contrato entre o
// calibrador e a API de serving.
type Artifact struct {
    Threshold float64                 `json:"threshold"`
    Heuristic string                  `json:"heuristic"`
    Model     string                  `json:"model"`
    Confusion metrics.ConfusionMatrix `json:"confusion"`
    Precision float64                 `json:"precision"`
    Recall    float64                 `json:"recall"`
    F1        float64                 `json:"f1"`
    CreatedAt time.Time               `json:"created_at"`
}

func New(threshold float64, heuristic, model string, cm metrics.ConfusionMatrix) Artifact {
    return Artifact{
        Threshold: threshold,
        Heuristic: heuristic,
        Model:     model,
        Confusion: cm,
        Precision: cm.Precision(),
        Recall:    cm.Recall(),
        F1:        cm.F1(),
        CreatedAt: time.Now().UTC(),
    }
}

func (a Artifact) Validate() error {
    if a.Threshold < 0 || a.Threshold > 1 { return errors.New("calib: threshold fora de [0,1]") }
    if a.Heuristic == "" { return errors.New("calib: heurística vazia") }
    return nil
}

func (a Artifact) Save(path string) error {
    if err := a.Validate(); err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    b, err := json.MarshalIndent(a, "", "  ")
    if err != nil { return err }
    return os.WriteFile(path, b, 0o644)
}

func Load(path string) (Artifact, error) {
    var a Artifact
    b, err := os.ReadFile(path)
    if err != nil { return a, err }
    if err := json.Unmarshal(b, &a); err != nil { return a, err }
    if err := a.Validate(); err != nil { return a, err }
    return a, nil
}
