package main

import (
	"encoding/csv"
	"encoding/gob"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"limiar/internal/calib"
	"limiar/internal/data"
	"limiar/internal/features"
	"limiar/internal/models"
	"limiar/pkg/utils"
)

// ruleModel é o fallback quando não existe modelo treinado em disco:
// pontua pelas mesmas regras usadas na geração do dataset.
type ruleModel struct{}

func (r *ruleModel) Fit(X [][]float64, y []int) error { return nil }
func (r *ruleModel) Predict(X [][]float64, threshold float64) []int {
    out := make([]int, len(X))
    for i, v := range X {
        if r.score(v) >= threshold { out[i] = 1 }
    }
    return out
}
func (r *ruleModel) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i, v := range X { out[i] = r.score(v) }
    return out
}
func (r *ruleModel) Name() string { return "RuleModel" }
func (r *ruleModel) score(v []float64) float64 {
    s := 0.05
    if v[4] == 1 { s += 0.35 }
    if v[5] == 1 { s += 0.1 }
    if v[6] == 1 { s += 0.15 }
    if v[7] == 1 { s += 0.15 }
    if v[len(v)-3] == 1 && v[0] > 200 { s += 0.2 }
    if v[1] < 0 { s += 0.3 }
    if s > 0.95 { s = 0.95 }
    return s
}

var model models.Model
var calibration calib.Artifact

func loadModel(algo string) models.Model {
    switch algo {
    case "rf":
        if f, err := os.Open(filepath.Join("models", "rf_model.gob")); err == nil {
            defer f.Close()
            var rf models.RandomForest
            if err := gob.NewDecoder(f).Decode(&rf); err == nil && len(rf.Trees) > 0 { return &rf }
        }
    case "bagging":
        if f, err := os.Open(filepath.Join("models", "bagging_model.gob")); err == nil {
            defer f.Close()
            var bg models.Bagging
            if err := gob.NewDecoder(f).Decode(&bg); err == nil && len(bg.Trees) > 0 { return &bg }
        }
    case "gb":
        if f, err := os.Open(filepath.Join("models", "gb_model.gob")); err == nil {
            defer f.Close()
            var gb models.GradientBoosting
            if err := gob.NewDecoder(f).Decode(&gb); err == nil && len(gb.Trees) > 0 { return &gb }
        }
    default:
        if f, err := os.Open(filepath.Join("models", "dt_model.gob")); err == nil {
            defer f.Close()
            var dt models.DecisionTree
            if err := gob.NewDecoder(f).Decode(&dt); err == nil && dt.Root != nil { return &dt }
        }
    }
    return nil
}

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    algo := strings.ToLower(os.Getenv("MODEL_ALGO"))
    if algo == "" { algo = "rf" }
    model = loadModel(algo)
    if model == nil {
        logger.Warn("Modelo não encontrado em disco, usando fallback de regras", zap.String("algo", algo))
        model = &ruleModel{}
    }

    calibPath := os.Getenv("CALIB_PATH")
    if calibPath == "" { calibPath = filepath.Join("models", "calibracao.json") }
    art, err := calib.Load(calibPath)
    if err != nil {
        logger.Warn("Calibração não encontrada, usando corte 0.5", zap.String("path", calibPath), zap.Error(err))
        art = calib.Artifact{Threshold: 0.5, Heuristic: "padrao", Model: model.Name(), CreatedAt: time.Now().UTC()}
    }
    calibration = art
    logger.Info("API pronta",
        zap.String("model", model.Name()),
        zap.Float64("threshold", calibration.Threshold),
        zap.String("heuristica", calibration.Heuristic),
    )

    r := gin.Default()

    r.Static("/static", "cmd/api/static")
    r.GET("/dashboard", func(c *gin.Context) {
        c.File("cmd/api/static/index.html")
    })
    r.GET("/dashboard/data", dashboardData)
    r.GET("/calibracao", func(c *gin.Context) {
        c.JSON(http.StatusOK, calibration)
    })

    api := r.Group("/")
    api.Use(apiKeyMiddleware)
    api.POST("/predict", handlePredict)
    api.POST("/batch", handleBatch)

    port := os.Getenv("PORT")
    if port == "" { port = "8080" }
    r.Run(":" + port)
}

func apiKeyMiddleware(c *gin.Context) {
    key := os.Getenv("API_KEY")
    if key == "" { c.Next(); return }
    got := c.GetHeader("X-API-Key")
    if got != key { c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }
    c.Next()
}

type predictReq struct {
    ExpenseID      string  `json:"expense_id"`
    RequestID      string  `json:"request_id"`
    RequesterID    string  `json:"requester_id"`
    TravellerID    string  `json:"traveller_id"`
    ApproverID     string  `json:"approver_id"`
    RequestDate    string  `json:"request_date"`
    TravelDate     string  `json:"travel_date"`
    Category       string  `json:"category"`
    Description    string  `json:"description"`
    Amount         float64 `json:"amount"`
    Currency       string  `json:"currency"`
    JobTitle       string  `json:"job_title"`
    Department     string  `json:"department"`
    ApprovalStatus string  `json:"approval_status"`
}

func (req predictReq) toExpense() data.Expense {
    rd, _ := time.Parse("2006-01-02", req.RequestDate)
    td, _ := time.Parse("2006-01-02", req.TravelDate)
    return data.Expense{
        ExpenseID:      req.ExpenseID,
        RequestID:      req.RequestID,
        RequesterID:    req.RequesterID,
        TravellerID:    req.TravellerID,
        ApproverID:     req.ApproverID,
        RequestDate:    rd,
        TravelDate:     td,
        Category:       req.Category,
        Description:    req.Description,
        Amount:         req.Amount,
        Currency:       req.Currency,
        JobTitle:       req.JobTitle,
        Department:     req.Department,
        ApprovalStatus: req.ApprovalStatus,
    }
}

func scoreItem(p float64) gin.H {
    label := 0
    if p >= calibration.Threshold { label = 1 }
    return gin.H{
        "score":     p,
        "label":     label,
        "threshold": calibration.Threshold,
        "heuristic": calibration.Heuristic,
        "model":     model.Name(),
    }
}

func handlePredict(c *gin.Context) {
    var req predictReq
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return
    }
    v, _ := features.Vectorize(req.toExpense())
    p := model.PredictProba([][]float64{v})[0]
    c.JSON(http.StatusOK, scoreItem(p))
}

func handleBatch(c *gin.Context) {
    var items []predictReq
    if err := c.BindJSON(&items); err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return }
    X := make([][]float64, 0, len(items))
    for _, it := range items {
        v, _ := features.Vectorize(it.toExpense())
        X = append(X, v)
    }
    ps := model.PredictProba(X)
    out := make([]gin.H, len(items))
    for i := range items {
        out[i] = scoreItem(ps[i])
        out[i]["expense_id"] = items[i].ExpenseID
    }
    c.JSON(http.StatusOK, out)
}

func dashboardData(c *gin.Context) {
    path := "data/threshold_sweep.csv"
    f, err := os.Open(path)
    if err != nil { c.JSON(http.StatusOK, gin.H{"sweep": []gin.H{}}); return }
    defer f.Close()
    r := csv.NewReader(f)
    rows, err := r.ReadAll()
    if err != nil || len(rows) < 2 { c.JSON(http.StatusOK, gin.H{"sweep": []gin.H{}}); return }
    hdr := rows[0]
    items := make([]gin.H, 0, len(rows)-1)
    for i := 1; i < len(rows); i++ {
        it := gin.H{}
        for j := range hdr {
            if j < len(rows[i]) { it[hdr[j]] = rows[i][j] }
        }
        items = append(items, it)
    }
    c.JSON(http.StatusOK, gin.H{"sweep": items, "calibracao": calibration})
}
