package metrics

import (
    "math"
    "sort"
)

// PRPoints são os arrays da curva precisão-recall. Thresholds vem em ordem
// crescente e tem um elemento a menos que Precision/Recall: o último par
// (precision=1, recall=0) é o ponto de fronteira da curva, sem corte associado.
type PRPoints struct {
    Precision  []float64
    Recall     []float64
    Thresholds []float64
}

// ROCPoints são os arrays da curva ROC. Thresholds vem em ordem decrescente,
// começando na sentinela +Inf (nenhum positivo predito), com FPR/TPR crescentes.
type ROCPoints struct {
    TPR        []float64
    FPR        []float64
    Thresholds []float64
}

type scorePair struct {
    s float64
    y int
}

func sortedPairs(yTrue []int, probs []float64) ([]scorePair, int, int, error) {
    if len(yTrue) == 0 || len(probs) == 0 { return nil, 0, 0, ErrEmpty }
    if len(yTrue) != len(probs) { return nil, 0, 0, ErrLengthMismatch }
    pairs := make([]scorePair, len(yTrue))
    pos, neg := 0, 0
    for i := range yTrue {
        pairs[i] = scorePair{probs[i], yTrue[i]}
        if yTrue[i] == 1 { pos++ } else { neg++ }
    }
    sort.Slice(pairs, func(i, j int) bool { return pairs[i].s > pairs[j].s })
    return pairs, pos, neg, nil
}

// PRCurve enumera precisão e recall em cada score distinto das predições.
// Em cada corte t, positivo predito é p >= t (mesma convenção de Apply), de
// modo que reaplicar um threshold da curva reproduz exatamente o ponto.
func PRCurve(yTrue []int, probs []float64) (*PRPoints, error) {
    pairs, pos, _, err := sortedPairs(yTrue, probs)
    if err != nil { return nil, err }
    if pos == 0 { return nil, ErrSingleClass }

    n := len(pairs)
    prec := make([]float64, 0, n)
    rec := make([]float64, 0, n)
    thr := make([]float64, 0, n)
    tp, fp := 0, 0
    for i := 0; i < n; {
        s := pairs[i].s
        for i < n && pairs[i].s == s {
            if pairs[i].y == 1 { tp++ } else { fp++ }
            i++
        }
        prec = append(prec, float64(tp)/float64(tp+fp))
        rec = append(rec, float64(tp)/float64(pos))
        thr = append(thr, s)
    }
    reverseFloats(prec)
    reverseFloats(rec)
    reverseFloats(thr)
    prec = append(prec, 1)
    rec = append(rec, 0)
    return &PRPoints{Precision: prec, Recall: rec, Thresholds: thr}, nil
}

// ROCCurve enumera TPR e FPR em cada score distinto das predições.
func ROCCurve(yTrue []int, probs []float64) (*ROCPoints, error) {
    pairs, pos, neg, err := sortedPairs(yTrue, probs)
    if err != nil { return nil, err }
    if pos == 0 || neg == 0 { return nil, ErrSingleClass }

    n := len(pairs)
    tpr := []float64{0}
    fpr := []float64{0}
    thr := []float64{math.Inf(1)}
    tp, fp := 0, 0
    for i := 0; i < n; {
        s := pairs[i].s
        for i < n && pairs[i].s == s {
            if pairs[i].y == 1 { tp++ } else { fp++ }
            i++
        }
        tpr = append(tpr, float64(tp)/float64(pos))
        fpr = append(fpr, float64(fp)/float64(neg))
        thr = append(thr, s)
    }
    return &ROCPoints{TPR: tpr, FPR: fpr, Thresholds: thr}, nil
}

// AUC integra a curva ROC pela regra do trapézio.
func (r *ROCPoints) AUC() float64 {
    var auc float64
    for i := 1; i < len(r.FPR); i++ {
        auc += (r.FPR[i] - r.FPR[i-1]) * (r.TPR[i] + r.TPR[i-1]) / 2.0
    }
    return auc
}

func reverseFloats(v []float64) {
    for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
        v[i], v[j] = v[j], v[i]
    }
}
