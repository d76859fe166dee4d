package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/service"
	"question_bank_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(filepath.Join(t.TempDir(), "api.db"))), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	bankRepo := repository.NewQuestionBankRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	importCfg := &config.ImportConfig{BatchSize: 1000}
	stats := service.NewStatisticsService(bankRepo, questionRepo, nil, 0)

	importCtl := NewImportController(service.NewImportService(db, bankRepo, questionRepo, nil, stats, importCfg))
	bankCtl := NewBankController(service.NewBankService(db, bankRepo, questionRepo, stats, nil, importCfg))
	contentCtl := NewContentController(service.NewQuestionQueryService(questionRepo),
		service.NewAnswerService(db, bankRepo, questionRepo, stats))
	statsCtl := NewStatisticsController(stats)
	healthCtl := NewHealthController(db, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", healthCtl.HealthCheck)
	api.POST("/upload/import", importCtl.Import)
	api.GET("/bank", bankCtl.ListBanks)
	api.POST("/bank/merge", bankCtl.MergeBanks)
	api.DELETE("/bank/:id", bankCtl.DeleteBank)
	api.GET("/content/questions", contentCtl.GetQuestions)
	api.GET("/content/questions-by-type", contentCtl.GetQuestionsByType)
	api.POST("/content/verify-answer", contentCtl.VerifyAnswer)
	api.GET("/statistics/overview", statsCtl.Overview)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid body %q", method, path, w.Body.String())
	}
	return w.Code, env
}

const tfPayload = `{"type":"true_false","content":"Is 2>1?","correct_answer":"1","analysis":"obvious"}`

func TestImportAndVerifyOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/upload/import", gin.H{"bankName": "tf", "payload": tfPayload})
	if code != http.StatusCreated {
		t.Fatalf("import status = %d (%s)", code, env.Message)
	}
	var imported struct {
		BankID        uint `json:"bankId"`
		QuestionCount int  `json:"questionCount"`
	}
	if err := json.Unmarshal(env.Data, &imported); err != nil || imported.QuestionCount != 1 {
		t.Fatalf("import data = %s", env.Data)
	}

	code, env = do(t, r, http.MethodGet, "/api/content/questions?bankId=1", nil)
	if code != http.StatusOK {
		t.Fatalf("questions status = %d", code)
	}
	var questions []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &questions); err != nil || len(questions) != 1 {
		t.Fatalf("questions data = %s", env.Data)
	}

	code, env = do(t, r, http.MethodPost, "/api/content/verify-answer", gin.H{"questionId": questions[0].ID, "userAnswer": "1"})
	if code != http.StatusOK {
		t.Fatalf("verify status = %d (%s)", code, env.Message)
	}
	var verified struct {
		IsCorrect     bool   `json:"isCorrect"`
		CorrectAnswer string `json:"correctAnswer"`
	}
	if err := json.Unmarshal(env.Data, &verified); err != nil || !verified.IsCorrect || verified.CorrectAnswer != "正确" {
		t.Fatalf("verify data = %s", env.Data)
	}

	code, _ = do(t, r, http.MethodGet, "/api/statistics/overview", nil)
	if code != http.StatusOK {
		t.Fatalf("overview status = %d", code)
	}
	code, _ = do(t, r, http.MethodGet, "/api/health", nil)
	if code != http.StatusOK {
		t.Fatalf("health status = %d", code)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"malformed payload", http.MethodPost, "/api/upload/import", gin.H{"bankName": "x", "payload": "not json"}, http.StatusBadRequest},
		{"schema violation", http.MethodPost, "/api/upload/import", gin.H{"bankName": "x", "payload": `{"type":"essay","content":"c","correct_answer":"a"}`}, http.StatusBadRequest},
		{"empty batch", http.MethodPost, "/api/upload/import", gin.H{"bankName": "x", "payload": ""}, http.StatusBadRequest},
		{"blank bank name", http.MethodPost, "/api/upload/import", gin.H{"bankName": " ", "payload": tfPayload}, http.StatusBadRequest},
		{"merge missing bank", http.MethodPost, "/api/bank/merge", gin.H{"bankId1": 7, "bankId2": 8, "name": "m"}, http.StatusNotFound},
		{"merge missing fields", http.MethodPost, "/api/bank/merge", gin.H{"bankId1": 7}, http.StatusBadRequest},
		{"delete bad id", http.MethodDelete, "/api/bank/abc", nil, http.StatusBadRequest},
		{"delete missing bank", http.MethodDelete, "/api/bank/99", nil, http.StatusNotFound},
		{"verify missing question", http.MethodPost, "/api/content/verify-answer", gin.H{"questionId": 99, "userAnswer": "A"}, http.StatusNotFound},
		{"questions without bank", http.MethodGet, "/api/content/questions", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, tt.method, tt.path, tt.body)
			if code != tt.want || env.Code != tt.want {
				t.Fatalf("status = %d (body code %d, %q), want %d", code, env.Code, env.Message, tt.want)
			}
		})
	}
}

func TestMergeAndDeleteOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	for _, name := range []string{"a", "b"} {
		if code, env := do(t, r, http.MethodPost, "/api/upload/import", gin.H{"bankName": name, "payload": tfPayload}); code != http.StatusCreated {
			t.Fatalf("import %s: %d %s", name, code, env.Message)
		}
	}

	code, env := do(t, r, http.MethodPost, "/api/bank/merge", gin.H{"bankId1": 1, "bankId2": 2, "name": "ab"})
	if code != http.StatusCreated {
		t.Fatalf("merge status = %d (%s)", code, env.Message)
	}
	var merged struct {
		NewBankID uint `json:"newBankId"`
	}
	if err := json.Unmarshal(env.Data, &merged); err != nil || merged.NewBankID != 3 {
		t.Fatalf("merge data = %s", env.Data)
	}

	if code, _ := do(t, r, http.MethodDelete, "/api/bank/1", nil); code != http.StatusOK {
		t.Fatalf("delete status = %d", code)
	}

	_, env = do(t, r, http.MethodGet, "/api/bank", nil)
	var banks []struct {
		ID         uint `json:"id"`
		TotalCount int  `json:"totalCount"`
	}
	if err := json.Unmarshal(env.Data, &banks); err != nil {
		t.Fatal(err)
	}
	if len(banks) != 2 || banks[0].ID != 2 || banks[1].ID != 3 || banks[1].TotalCount != 2 {
		t.Fatalf("banks = %+v", banks)
	}
}
