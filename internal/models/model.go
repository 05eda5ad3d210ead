package models

// Model é um classificador binário que expõe probabilidade da classe positiva.
// Predict aplica o corte: rótulo 1 quando a probabilidade >= threshold.
type Model interface {
    Fit(X [][]float64, y []int) error
    Predict(X [][]float64, threshold float64) []int
    PredictProba(X [][]float64) []float64
    Name() string
}
