package main

import (
	"encoding/gob"
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"limiar/internal/calib"
	"limiar/internal/data"
	"limiar/internal/features"
	"limiar/internal/metrics"
	"limiar/internal/models"
	"limiar/internal/plots"
	"limiar/internal/search"
	"limiar/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    regen := flag.Bool("regen", true, "Regenerar dataset sintético")
    n := flag.Int("n", 40000, "Número de registros sintéticos")
    dataPath := flag.String("data", "data/synthetic.csv", "Caminho do CSV do dataset")
    seed := flag.Int64("seed", 42, "Seed da geração e da partição treino/validação")
    algo := flag.String("algo", "rf", "Algoritmo: dt|rf|bagging|gb")
    useGrid := flag.Bool("grid", true, "Buscar hiperparâmetros por validação cruzada (apenas rf)")
    folds := flag.Int("folds", 5, "Número de folds da validação cruzada")
    estimators := flag.Int("estimators", 100, "Número de estimadores quando não há busca")
    maxDepth := flag.Int("max_depth", 8, "Profundidade máxima da árvore")
    minSamples := flag.Int("min_samples", 20, "Mínimo de amostras para split")
    minLeaf := flag.Int("min_leaf", 2, "Mínimo de amostras por folha")
    pruneAlpha := flag.Float64("prune_alpha", 0, "Parâmetro de poda da árvore")
    lr := flag.Float64("lr", 0.1, "Learning rate para GradientBoosting")
    recallTarget := flag.Float64("recall_target", 0.95, "Piso de recall da heurística recall")
    heuristic := flag.String("heuristica", "f1", "Heurística do corte final: prevalencia|f1|roc|recall|manual")
    manualThr := flag.Float64("threshold", 0.5, "Corte usado quando heuristica=manual")
    plotsDir := flag.String("plots_dir", "cmd/api/static", "Diretório dos PNGs das curvas")
    modelOut := flag.String("model_out", "", "Caminho do modelo treinado (padrão models/<algo>_model.gob)")
    calibOut := flag.String("calib_out", "models/calibracao.json", "Caminho do artefato de calibração")
    flag.Parse()

    if *regen {
        logger.Info("Gerando dataset sintético", zap.Int("n", *n), zap.Int64("seed", *seed), zap.String("out", *dataPath))
        if err := data.GenerateSyntheticExpenses(*n, 0.08, *seed, *dataPath); err != nil {
            logger.Fatal("Falha ao gerar dataset", zap.Error(err))
        }
    }

    expenses, err := data.LoadCSV(*dataPath)
    if err != nil { logger.Fatal("Falha ao carregar dataset", zap.Error(err)) }
    X, y := features.Matrix(expenses)

    Xtrain, Xval, ytrain, yval, err := data.Split(X, y, 0.2, *seed)
    if err != nil { logger.Fatal("Falha na partição treino/validação", zap.Error(err)) }

    var pos int
    for i := range ytrain { if ytrain[i] == 1 { pos++ } }
    logger.Info("Partição pronta",
        zap.Int("treino", len(ytrain)),
        zap.Int("validacao", len(yval)),
        zap.Int("positivos_treino", pos),
        zap.Float64("prevalencia_treino", float64(pos)/float64(len(ytrain))),
    )

    var mdl models.Model
    switch {
    case *algo == "rf" && *useGrid:
        res, err := search.GridSearch(Xtrain, ytrain, search.DefaultGrid(), *folds, *seed, func(p search.Params) models.Model {
            rf := models.NewRandomForest()
            rf.NEstimators = p.NEstimators
            rf.MinSamplesLeaf = p.MinSamplesLeaf
            rf.PruneAlpha = p.PruneAlpha
            rf.MaxDepth = *maxDepth
            rf.MinSamplesSplit = *minSamples
            return rf
        })
        if err != nil { logger.Fatal("Falha na busca de hiperparâmetros", zap.Error(err)) }
        logger.Info("Busca concluída",
            zap.Int("n_estimators", res.Best.NEstimators),
            zap.Int("min_samples_leaf", res.Best.MinSamplesLeaf),
            zap.Float64("prune_alpha", res.Best.PruneAlpha),
            zap.Float64("recall_cv", res.BestScore),
        )
        mdl = res.Model
    default:
        mdl = constructModel(*algo, *estimators, *maxDepth, *minSamples, *minLeaf, *pruneAlpha, *lr)
        if err := mdl.Fit(Xtrain, ytrain); err != nil {
            logger.Fatal("Falha ao treinar modelo", zap.Error(err))
        }
    }
    logger.Info("Modelo treinado", zap.String("model", mdl.Name()))

    probaVal := mdl.PredictProba(Xval)

    pr, err := metrics.PRCurve(yval, probaVal)
    if err != nil { logger.Fatal("Falha na curva PR", zap.Error(err)) }
    roc, err := metrics.ROCCurve(yval, probaVal)
    if err != nil { logger.Fatal("Falha na curva ROC", zap.Error(err)) }
    logger.Info("Curvas calculadas", zap.Int("pontos_pr", len(pr.Thresholds)), zap.Float64("roc_auc", roc.AUC()))

    candidates := map[string]float64{"padrao": 0.5}
    if thr, err := metrics.PrevalenceThreshold(ytrain); err == nil {
        candidates["prevalencia"] = thr
    } else {
        logger.Warn("Heurística prevalencia falhou", zap.Error(err))
    }
    if thr, f1, err := metrics.BestF1Threshold(pr); err == nil {
        candidates["f1"] = thr
        logger.Info("Melhor F1 na curva PR", zap.Float64("threshold", thr), zap.Float64("f1", f1))
    } else {
        logger.Warn("Heurística f1 falhou", zap.Error(err))
    }
    if thr, err := metrics.ClosestToCornerThreshold(roc); err == nil {
        candidates["roc"] = thr
    } else {
        logger.Warn("Heurística roc falhou", zap.Error(err))
    }
    if thr, err := metrics.RecallFloorThreshold(pr, *recallTarget); err == nil {
        candidates["recall"] = thr
    } else {
        logger.Warn("Heurística recall falhou", zap.Error(err), zap.Float64("target", *recallTarget))
    }
    candidates["manual"] = *manualThr

    for _, name := range []string{"padrao", "prevalencia", "f1", "roc", "recall", "manual"} {
        thr, ok := candidates[name]
        if !ok { continue }
        cm, err := metrics.ConfusionAt(yval, probaVal, thr)
        if err != nil { logger.Fatal("Falha na matriz de confusão", zap.String("heuristica", name), zap.Error(err)) }
        logger.Info("Candidato de corte",
            zap.String("heuristica", name),
            zap.Float64("threshold", thr),
            zap.Int("tn", cm.TN), zap.Int("fp", cm.FP), zap.Int("fn", cm.FN), zap.Int("tp", cm.TP),
            zap.Float64("precisao", cm.Precision()),
            zap.Float64("recall", cm.Recall()),
            zap.Float64("f1", cm.F1()),
        )
    }

    if err := plots.ROCPNG(filepath.Join(*plotsDir, "roc_curve.png"), roc); err != nil {
        logger.Warn("Falha ao salvar PNG da curva ROC", zap.Error(err))
    }
    if err := plots.PRPNG(filepath.Join(*plotsDir, "pr_curve.png"), pr); err != nil {
        logger.Warn("Falha ao salvar PNG da curva PR", zap.Error(err))
    }
    if err := plots.ThresholdPNG(filepath.Join(*plotsDir, "threshold_curve.png"), pr); err != nil {
        logger.Warn("Falha ao salvar PNG de precisão/recall x threshold", zap.Error(err))
    }

    chosen, ok := candidates[*heuristic]
    if !ok { logger.Fatal("Heurística desconhecida ou indisponível", zap.String("heuristica", *heuristic)) }
    cm, err := metrics.ConfusionAt(yval, probaVal, chosen)
    if err != nil { logger.Fatal("Falha ao validar o corte escolhido", zap.Error(err)) }
    art := calib.New(chosen, *heuristic, mdl.Name(), cm)
    if err := art.Save(*calibOut); err != nil { logger.Fatal("Falha ao salvar calibração", zap.Error(err)) }
    logger.Info("Calibração salva",
        zap.String("path", *calibOut),
        zap.String("heuristica", *heuristic),
        zap.Float64("threshold", chosen),
    )

    path := *modelOut
    if path == "" { path = filepath.Join("models", *algo+"_model.gob") }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { logger.Fatal("mkdir models", zap.Error(err)) }
    mf, err := os.Create(path)
    if err != nil { logger.Fatal("criar modelo", zap.Error(err)) }
    defer mf.Close()
    enc := gob.NewEncoder(mf)
    if err := enc.Encode(mdl); err != nil { logger.Fatal("serializar modelo", zap.Error(err)) }
    logger.Info("Modelo salvo", zap.String("path", path))
}

func constructModel(algo string, estimators, maxDepth, minSamples, minLeaf int, pruneAlpha, lr float64) models.Model {
    switch algo {
    case "rf":
        rf := models.NewRandomForest()
        rf.NEstimators = estimators
        rf.MaxDepth = maxDepth
        rf.MinSamplesSplit = minSamples
        rf.MinSamplesLeaf = minLeaf
        rf.PruneAlpha = pruneAlpha
        return rf
    case "bagging":
        bg := models.NewBagging()
        bg.NEstimators = estimators
        bg.MaxDepth = maxDepth
        bg.MinSamplesSplit = minSamples
        bg.MinSamplesLeaf = minLeaf
        bg.PruneAlpha = pruneAlpha
        return bg
    case "gb":
        gb := models.NewGradientBoosting()
        gb.NEstimators = estimators
        gb.LearningRate = lr
        gb.MinSamplesLeaf = minLeaf
        return gb
    default:
        dt := models.NewDecisionTree()
        dt.MaxDepth = maxDepth
        dt.MinSamplesSplit = minSamples
        dt.MinSamplesLeaf = minLeaf
        dt.PruneAlpha = pruneAlpha
        return dt
    }
}
