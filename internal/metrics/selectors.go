package metrics

import "math"

// PrevalenceThreshold devolve 1 - prevalência da classe positiva no treino.
// Quanto mais rara a classe positiva, mais alto o corte sugerido.
func PrevalenceThreshold(yTrain []int) (float64, error) {
    if len(yTrain) == 0 { return 0, ErrEmpty }
    pos := 0
    for _, v := range yTrain { if v == 1 { pos++ } }
    return 1 - float64(pos)/float64(len(yTrain)), nil
}

// BestF1Threshold percorre os pontos da curva PR que têm corte associado e
// devolve o corte de maior F1. Pontos com precisão+recall igual a zero não
// participam da busca; em empate vence o primeiro na ordem da curva.
func BestF1Threshold(pr *PRPoints) (threshold, f1 float64, err error) {
    if pr == nil || len(pr.Thresholds) == 0 { return 0, 0, ErrEmpty }
    best := -1.0
    bestThr := 0.0
    for i := range pr.Thresholds {
        p, r := pr.Precision[i], pr.Recall[i]
        if p+r == 0 { continue }
        f := 2 * p * r / (p + r)
        if f > best {
            best = f
            bestThr = pr.Thresholds[i]
        }
    }
    if best < 0 { return 0, 0, ErrNoQualifying }
    return bestThr, best, nil
}

// ClosestToCornerThreshold devolve o corte cujo ponto ROC minimiza a
// distância ao canto superior esquerdo: (1-TPR)^2 + FPR^2. A sentinela
// +Inf da curva não participa.
func ClosestToCornerThreshold(roc *ROCPoints) (float64, error) {
    if roc == nil || len(roc.Thresholds) < 2 { return 0, ErrEmpty }
    best := math.MaxFloat64
    bestThr := 0.0
    for i := 1; i < len(roc.Thresholds); i++ {
        d := (1-roc.TPR[i])*(1-roc.TPR[i]) + roc.FPR[i]*roc.FPR[i]
        if d < best {
            best = d
            bestThr = roc.Thresholds[i]
        }
    }
    return bestThr, nil
}

// RecallFloorThreshold devolve o maior corte da curva PR cujo recall ainda é
// >= target: troca precisão máxima por um piso garantido de recall. Como os
// cortes vêm em ordem crescente e o recall só decresce, é o último índice do
// conjunto que satisfaz o piso.
func RecallFloorThreshold(pr *PRPoints, target float64) (float64, error) {
    if pr == nil || len(pr.Thresholds) == 0 { return 0, ErrEmpty }
    if target <= 0 || target > 1 { return 0, ErrThresholdRange }
    idx := -1
    for i := range pr.Thresholds {
        if pr.Recall[i] >= target { idx = i }
    }
    if idx == -1 { return 0, ErrNoQualifying }
    return pr.Thresholds[idx], nil
}
