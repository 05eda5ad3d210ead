package search

import (
    "errors"
    "math/rand"

    "limiar/internal/metrics"
    "limiar/internal/models"
)

// Params é uma combinação candidata da grade.
type Params struct {
    NEstimators    int     `json:"n_estimators"`
    MinSamplesLeaf int     `json:"min_samples_leaf"`
    PruneAlpha     float64 `json:"prune_alpha"`
}

// Grid enumera os valores candidatos de cada hiperparâmetro.
type Grid struct {
    NEstimators    []int
    MinSamplesLeaf []int
    PruneAlphas    []float64
}

// DefaultGrid é a grade da calibração: tamanho do ensemble, tamanho mínimo
// de folha e o parâmetro de poda.
func DefaultGrid() Grid {
    return Grid{
        NEstimators:    []int{100, 150, 250},
        MinSamplesLeaf: []int{2, 3, 4},
        PruneAlphas:    []float64{0, 0.1, 0.2, 0.3},
    }
}

func (g Grid) combos() []Params {
    out := make([]Params, 0, len(g.NEstimators)*len(g.MinSamplesLeaf)*len(g.PruneAlphas))
    for _, ne := range g.NEstimators {
        for _, ml := range g.MinSamplesLeaf {
            for _, a := range g.PruneAlphas {
                out = append(out, Params{NEstimators: ne, MinSamplesLeaf: ml, PruneAlpha: a})
            }
        }
    }
    return out
}

// Result guarda a combinação vencedora, o score médio de validação cruzada
// e o modelo reajustado com o treino completo.
type Result struct {
    Best      Params
    BestScore float64
    Model     models.Model
}

// Constructor cria um modelo novo para uma combinação da grade.
type Constructor func(Params) models.Model

// GridSearch avalia cada combinação com validação cruzada k-fold, pontuando
// por recall no corte padrão 0.5, e reajusta a melhor no treino completo.
// A escolha do corte de operação acontece depois, fora da busca.
func GridSearch(X [][]float64, y []int, grid Grid, folds int, seed int64, build Constructor) (*Result, error) {
    if len(X) == 0 { return nil, errors.New("search: treino vazio") }
    if len(X) != len(y) { return nil, errors.New("search: X e y com tamanhos diferentes") }
    if folds < 2 { return nil, errors.New("search: folds deve ser >= 2") }
    if folds > len(X) { return nil, errors.New("search: folds maior que o número de amostras") }
    combos := grid.combos()
    if len(combos) == 0 { return nil, errors.New("search: grade vazia") }

    rng := rand.New(rand.NewSource(seed))
    perm := rng.Perm(len(X))

    res := &Result{BestScore: -1}
    for _, c := range combos {
        score, err := cvRecall(X, y, perm, folds, c, build)
        if err != nil { return nil, err }
        if score > res.BestScore {
            res.BestScore = score
            res.Best = c
        }
    }

    final := build(res.Best)
    if err := final.Fit(X, y); err != nil { return nil, err }
    res.Model = final
    return res, nil
}

func cvRecall(X [][]float64, y []int, perm []int, folds int, c Params, build Constructor) (float64, error) {
    n := len(perm)
    sum := 0.0
    for f := 0; f < folds; f++ {
        lo := f * n / folds
        hi := (f + 1) * n / folds

        Xtr := make([][]float64, 0, n-(hi-lo))
        ytr := make([]int, 0, n-(hi-lo))
        Xva := make([][]float64, 0, hi-lo)
        yva := make([]int, 0, hi-lo)
        for i, k := range perm {
            if i >= lo && i < hi {
                Xva = append(Xva, X[k])
                yva = append(yva, y[k])
            } else {
                Xtr = append(Xtr, X[k])
                ytr = append(ytr, y[k])
            }
        }

        mdl := build(c)
        if err := mdl.Fit(Xtr, ytr); err != nil { return 0, err }
        pred := mdl.Predict(Xva, 0.5)
        cm, err := metrics.Confusion(yva, pred)
        if err != nil { return 0, err }
        sum += cm.Recall()
    }
    return sum / float64(folds), nil
}
