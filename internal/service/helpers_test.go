package service

import (
	"context"
	"path/filepath"
	"testing"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的 SQLite 文件库，外键级联开启
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "question_bank.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testServices struct {
	db       *gorm.DB
	banks    *repository.QuestionBankRepository
	question *repository.QuestionRepository
	importer *ImportService
	bank     *BankService
	answer   *AnswerService
	query    *QuestionQueryService
	stats    *StatisticsService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)
	bankRepo := repository.NewQuestionBankRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	importCfg := &config.ImportConfig{BatchSize: 1000}
	stats := NewStatisticsService(bankRepo, questionRepo, nil, 0)

	return &testServices{
		db:       db,
		banks:    bankRepo,
		question: questionRepo,
		importer: NewImportService(db, bankRepo, questionRepo, nil, stats, importCfg),
		bank:     NewBankService(db, bankRepo, questionRepo, stats, nil, importCfg),
		answer:   NewAnswerService(db, bankRepo, questionRepo, stats),
		query:    NewQuestionQueryService(questionRepo),
		stats:    stats,
	}
}

func (s *testServices) mustImport(t *testing.T, name, payload string) *model.ImportResult {
	t.Helper()
	res, err := s.importer.Import(context.Background(), model.ImportRequest{BankName: name, Payload: payload})
	if err != nil {
		t.Fatalf("import %q: %v", name, err)
	}
	return res
}

func (s *testServices) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := s.db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (s *testServices) questionsOf(t *testing.T, bankID uint) []model.Question {
	t.Helper()
	var qs []model.Question
	err := s.db.Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("label ASC") }).
		Where("bank_id = ?", bankID).Order("id ASC").Find(&qs).Error
	if err != nil {
		t.Fatalf("load questions: %v", err)
	}
	return qs
}

const samplePayload = `{"type":"single","content":"1+1=?","correct_answer":"B","analysis":"basic","options":[{"label":"A","text":"1"},{"label":"B","text":"2"},{"label":"C","text":"3"}]}
{"type":"multiple","content":"primes","correct_answer":"[\"A\",\"C\"]","options":[{"label":"A","text":"2"},{"label":"B","text":"4"},{"label":"C","text":"5"}]}
{"type":"true_false","content":"Is 2>1?","correct_answer":"1","analysis":"obvious"}
{"type":"fill_blank","content":"capital of France","correct_answer":"Paris"}
{"type":"short_answer","content":"explain gravity","correct_answer":"mass attracts mass"}`
