package data

import (
    "errors"
    "math/rand"
)

// Split separa X e y em treino e validação de forma estratificada: a fração de
// positivos é preservada nas duas partições. A mesma seed produz a mesma partição.
func Split(X [][]float64, y []int, testFrac float64, seed int64) (Xtrain, Xtest [][]float64, ytrain, ytest []int, err error) {
    if len(X) == 0 { return nil, nil, nil, nil, errors.New("dataset vazio") }
    if len(X) != len(y) { return nil, nil, nil, nil, errors.New("X e y com tamanhos diferentes") }
    if testFrac <= 0 || testFrac >= 1 { return nil, nil, nil, nil, errors.New("testFrac deve estar em (0,1)") }

    rng := rand.New(rand.NewSource(seed))

    var posIdx, negIdx []int
    for i := range y { if y[i] == 1 { posIdx = append(posIdx, i) } else { negIdx = append(negIdx, i) } }
    rp := rng.Perm(len(posIdx))
    rn := rng.Perm(len(negIdx))
    pTrain := int((1 - testFrac) * float64(len(posIdx)))
    nTrain := int((1 - testFrac) * float64(len(negIdx)))

    trainIdx := make([]int, 0, pTrain+nTrain)
    testIdx := make([]int, 0, len(y)-pTrain-nTrain)
    for i := 0; i < len(posIdx); i++ { if i < pTrain { trainIdx = append(trainIdx, posIdx[rp[i]]) } else { testIdx = append(testIdx, posIdx[rp[i]]) } }
    for i := 0; i < len(negIdx); i++ { if i < nTrain { trainIdx = append(trainIdx, negIdx[rn[i]]) } else { testIdx = append(testIdx, negIdx[rn[i]]) } }

    rTrain := rng.Perm(len(trainIdx))
    rTest := rng.Perm(len(testIdx))
    Xtrain, ytrain = make([][]float64, len(trainIdx)), make([]int, len(trainIdx))
    Xtest, ytest = make([][]float64, len(testIdx)), make([]int, len(testIdx))
    for i := range rTrain { k := trainIdx[rTrain[i]]; Xtrain[i] = X[k]; ytrain[i] = y[k] }
    for i := range rTest { k := testIdx[rTest[i]]; Xtest[i] = X[k]; ytest[i] = y[k] }
    return Xtrain, Xtest, ytrain, ytest, nil
}
