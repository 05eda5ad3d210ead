package metrics

import "errors"

var (
    ErrEmpty          = errors.New("metrics: entrada vazia")
    ErrLengthMismatch = errors.New("metrics: vetores com tamanhos diferentes")
    ErrThresholdRange = errors.New("metrics: threshold fora de [0,1]")
    ErrSingleClass    = errors.New("metrics: y contém uma única classe")
    ErrNoQualifying   = errors.New("metrics: nenhum ponto da curva atinge o alvo")
)

// ConfusionMatrix guarda as quatro contagens da comparação predito x real.
type ConfusionMatrix struct {
    TN int `json:"tn"`
    FP int `json:"fp"`
    FN int `json:"fn"`
    TP int `json:"tp"`
}

func (c ConfusionMatrix) Total() int { return c.TN + c.FP + c.FN + c.TP }

func (c ConfusionMatrix) Precision() float64 {
    if c.TP+c.FP == 0 { return 0 }
    return float64(c.TP) / float64(c.TP+c.FP)
}

func (c ConfusionMatrix) Recall() float64 {
    if c.TP+c.FN == 0 { return 0 }
    return float64(c.TP) / float64(c.TP+c.FN)
}

func (c ConfusionMatrix) F1() float64 {
    p, r := c.Precision(), c.Recall()
    if p+r == 0 { return 0 }
    return 2 * p * r / (p + r)
}

func (c ConfusionMatrix) Accuracy() float64 {
    if c.Total() == 0 { return 0 }
    return float64(c.TP+c.TN) / float64(c.Total())
}

// Apply converte probabilidades em rótulos: 1 quando p >= threshold.
// Empate exatamente no corte conta como positivo; é a convenção canônica
// do pacote e vale para todos os seletores.
func Apply(probs []float64, threshold float64) ([]int, error) {
    if len(probs) == 0 { return nil, ErrEmpty }
    if threshold < 0 || threshold > 1 { return nil, ErrThresholdRange }
    out := make([]int, len(probs))
    for i := range probs { if probs[i] >= threshold { out[i] = 1 } }
    return out, nil
}

// Confusion compara rótulos preditos com os reais.
func Confusion(yTrue, yPred []int) (ConfusionMatrix, error) {
    var c ConfusionMatrix
    if len(yTrue) == 0 { return c, ErrEmpty }
    if len(yTrue) != len(yPred) { return c, ErrLengthMismatch }
    for i := range yTrue {
        switch {
        case yPred[i] == 1 && yTrue[i] == 1:
            c.TP++
        case yPred[i] == 1 && yTrue[i] == 0:
            c.FP++
        case yPred[i] == 0 && yTrue[i] == 0:
            c.TN++
        default:
            c.FN++
        }
    }
    return c, nil
}

// ConfusionAt aplica o corte e devolve a matriz resultante.
func ConfusionAt(yTrue []int, probs []float64, threshold float64) (ConfusionMatrix, error) {
    if len(yTrue) != len(probs) { return ConfusionMatrix{}, ErrLengthMismatch }
    yPred, err := Apply(probs, threshold)
    if err != nil { return ConfusionMatrix{}, err }
    return Confusion(yTrue, yPred)
}
