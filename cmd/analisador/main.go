package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"limiar/internal/data"
	"limiar/internal/features"
	"limiar/internal/metrics"
	"limiar/internal/models"
)

func main() {
    algo := flag.String("algo", "rf", "Algoritmo: dt|rf|bagging|gb")
    estimators := flag.Int("estimators", 100, "Número de estimadores (rf/bagging/gb)")
    maxDepth := flag.Int("max_depth", 8, "Profundidade máxima da árvore")
    minSamples := flag.Int("min_samples", 20, "Mínimo de amostras para split")
    minLeaf := flag.Int("min_leaf", 2, "Mínimo de amostras por folha")
    lr := flag.Float64("lr", 0.1, "Learning rate para GradientBoosting")
    seed := flag.Int64("seed", 42, "Seed da partição treino/validação")
    steps := flag.Int("steps", 100, "Quantidade de passos da varredura de threshold")
    dataPath := flag.String("data", "data/synthetic.csv", "CSV de entrada")
    outImg := flag.String("out_img", "cmd/api/static/threshold_sweep.png", "PNG de saída")
    outCsv := flag.String("out_csv", "data/threshold_sweep.csv", "CSV de saída")
    flag.Parse()

    expenses, err := data.LoadCSV(*dataPath)
    if err != nil { fmt.Println("Falha ao carregar dataset:", err); return }
    X, y := features.Matrix(expenses)

    Xtrain, Xval, ytrain, yval, err := data.Split(X, y, 0.2, *seed)
    if err != nil { fmt.Println("Falha na partição:", err); return }

    mdl := buildModel(*algo, *estimators, *maxDepth, *minSamples, *minLeaf, *lr)
    if err := mdl.Fit(Xtrain, ytrain); err != nil { fmt.Println("Falha treino:", err); return }
    proba := mdl.PredictProba(Xval)

    thresholds := make([]float64, 0, *steps+1)
    precision := make([]float64, 0, *steps+1)
    recall := make([]float64, 0, *steps+1)
    f1 := make([]float64, 0, *steps+1)
    accuracy := make([]float64, 0, *steps+1)
    for i := 0; i <= *steps; i++ {
        t := float64(i) / float64(*steps)
        cm, err := metrics.ConfusionAt(yval, proba, t)
        if err != nil { fmt.Println("Falha na varredura:", err); return }
        thresholds = append(thresholds, t)
        precision = append(precision, cm.Precision())
        recall = append(recall, cm.Recall())
        f1 = append(f1, cm.F1())
        accuracy = append(accuracy, cm.Accuracy())
        fmt.Printf("%s | thr=%.2f | prec=%.3f | rec=%.3f | f1=%.3f | acc=%.3f\n",
            mdl.Name(), t, cm.Precision(), cm.Recall(), cm.F1(), cm.Accuracy())
    }

    if err := writeCSV(*outCsv, thresholds, precision, recall, f1, accuracy); err != nil {
        fmt.Println("Erro ao salvar CSV:", err)
    } else {
        fmt.Println("Varredura salva em:", *outCsv)
    }

    if err := plotSweep(*outImg, thresholds, precision, recall, f1); err != nil {
        fmt.Println("Erro ao salvar PNG:", err)
    } else {
        fmt.Println("Gráfico salvo em:", *outImg)
    }
}

func buildModel(algo string, estimators, maxDepth, minSamples, minLeaf int, lr float64) models.Model {
    switch algo {
    case "dt":
        dt := models.NewDecisionTree()
        dt.MaxDepth = maxDepth
        dt.MinSamplesSplit = minSamples
        dt.MinSamplesLeaf = minLeaf
        return dt
    case "bagging":
        bg := models.NewBagging()
        bg.NEstimators = estimators
        bg.MaxDepth = maxDepth
        bg.MinSamplesSplit = minSamples
        bg.MinSamplesLeaf = minLeaf
        return bg
    case "gb":
        gb := models.NewGradientBoosting()
        gb.NEstimators = estimators
        gb.LearningRate = lr
        gb.MinSamplesLeaf = minLeaf
        return gb
    default:
        rf := models.NewRandomForest()
        rf.NEstimators = estimators
        rf.MaxDepth = maxDepth
        rf.MinSamplesSplit = minSamples
        rf.MinSamplesLeaf = minLeaf
        return rf
    }
}

func writeCSV(path string, thresholds, precision, recall, f1, accuracy []float64) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write([]string{"threshold", "precision", "recall", "f1", "accuracy"}); err != nil { return err }
    for i := range thresholds {
        rec := []string{
            strconv.FormatFloat(thresholds[i], 'f', 2, 64),
            fmt.Sprintf("%.6f", precision[i]),
            fmt.Sprintf("%.6f", recall[i]),
            fmt.Sprintf("%.6f", f1[i]),
            fmt.Sprintf("%.6f", accuracy[i]),
        }
        if err := w.Write(rec); err != nil { return err }
    }
    return nil
}

func plotSweep(path string, thresholds, precision, recall, f1 []float64) error {
    p := plot.New()
    p.Title.Text = "Varredura de Threshold"
    p.X.Label.Text = "Threshold"
    p.Y.Label.Text = "Métrica"
    p.X.Min, p.X.Max = 0, 1
    p.Y.Min, p.Y.Max = 0, 1

    toXY := func(xs, ys []float64) plotter.XYs {
        pts := make(plotter.XYs, len(xs))
        for i := range xs { pts[i].X = xs[i]; pts[i].Y = ys[i] }
        return pts
    }
    if err := plotutil.AddLinePoints(p,
        "Precisão", toXY(thresholds, precision),
        "Recall", toXY(thresholds, recall),
        "F1", toXY(thresholds, f1),
    ); err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
