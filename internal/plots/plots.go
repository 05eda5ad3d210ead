package plots

import (
    "os"
    "path/filepath"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "limiar/internal/metrics"
)

func toXY(xs, ys []float64) plotter.XYs {
    pts := make(plotter.XYs, len(xs))
    for i := range xs { pts[i].X = xs[i]; pts[i].Y = ys[i] }
    return pts
}

func save(p *plot.Plot, path string) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// ROCPNG desenha a curva ROC e a diagonal do classificador aleatório.
func ROCPNG(path string, roc *metrics.ROCPoints) error {
    p := plot.New()
    p.Title.Text = "Curva ROC"
    p.X.Label.Text = "Taxa de falsos positivos"
    p.Y.Label.Text = "Taxa de verdadeiros positivos"
    p.X.Min, p.X.Max = 0, 1
    p.Y.Min, p.Y.Max = 0, 1

    diag := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}
    if err := plotutil.AddLinePoints(p, "ROC", toXY(roc.FPR, roc.TPR)); err != nil { return err }
    if err := plotutil.AddLines(p, "Aleatório", diag); err != nil { return err }
    return save(p, path)
}

// PRPNG desenha a curva precisão x recall.
func PRPNG(path string, pr *metrics.PRPoints) error {
    p := plot.New()
    p.Title.Text = "Curva Precisão-Recall"
    p.X.Label.Text = "Recall"
    p.Y.Label.Text = "Precisão"
    p.X.Min, p.X.Max = 0, 1
    p.Y.Min, p.Y.Max = 0, 1

    if err := plotutil.AddLinePoints(p, "PR", toXY(pr.Recall, pr.Precision)); err != nil { return err }
    return save(p, path)
}

// ThresholdPNG desenha precisão e recall como funções do corte. O último par
// da curva PR não tem corte associado e fica de fora para alinhar os arrays.
func ThresholdPNG(path string, pr *metrics.PRPoints) error {
    n := len(pr.Thresholds)
    p := plot.New()
    p.Title.Text = "Precisão e Recall x Threshold"
    p.X.Label.Text = "Threshold"
    p.Y.Label.Text = "Métrica"
    p.X.Min, p.X.Max = 0, 1
    p.Y.Min, p.Y.Max = 0, 1

    if err := plotutil.AddLinePoints(p,
        "Precisão", toXY(pr.Thresholds, pr.Precision[:n]),
        "Recall", toXY(pr.Thresholds, pr.Recall[:n]),
    ); err != nil { return err }
    return save(p, path)
}
