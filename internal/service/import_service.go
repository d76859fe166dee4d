package service

import (
	"context"
	"fmt"
	"strings"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/logger"
	"question_bank_backend/pkg/monitoring"
	"question_bank_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ImportService struct {
	DB              *gorm.DB
	BankRepo        *repository.QuestionBankRepository
	QuestionRepo    *repository.QuestionRepository
	Storage         *StorageService
	Statistics      *StatisticsService
	BatchSize       int
	ArchivePayloads bool
}

func NewImportService(db *gorm.DB, bankRepo *repository.QuestionBankRepository, questionRepo *repository.QuestionRepository,
	storage *StorageService, stats *StatisticsService, cfg *config.ImportConfig) *ImportService {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = util.DefaultImportBatchSize
	}
	return &ImportService{
		DB:              db,
		BankRepo:        bankRepo,
		QuestionRepo:    questionRepo,
		Storage:         storage,
		Statistics:      stats,
		BatchSize:       batchSize,
		ArchivePayloads: cfg.ArchivePayloads,
	}
}

// Import 解析、校验并导入一批题目到新建的题库。
// 解析和校验在事务之外完成，失败时不产生任何写入；
// 写入阶段在同一个事务中完成，任何存储错误都会整体回滚。
func (s *ImportService) Import(ctx context.Context, req model.ImportRequest) (result *model.ImportResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "ImportService.Import")
	defer func() { tracing.EndSpan(span, err) }()
	defer func() { monitoring.ImportCounter.WithLabelValues(importOutcome(err)).Inc() }()

	name := strings.TrimSpace(req.BankName)
	if name == "" {
		return nil, fmt.Errorf("%w: bank name must not be blank", util.ErrInvalidArgument)
	}

	raws, err := ParseRecords(req.Payload)
	if err != nil {
		return nil, err
	}
	records, err := ValidateRecords(raws)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("import.records", len(records)))

	result = &model.ImportResult{}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bankRepo := s.BankRepo.WithTx(tx)
		questionRepo := s.QuestionRepo.WithTx(tx)

		bank := &model.QuestionBank{Name: name, Description: req.Description}
		if err := bankRepo.Create(ctx, bank); err != nil {
			return fmt.Errorf("create bank: %w", err)
		}

		graph := newQuestionGraph(bank.ID, records)
		questionCount, optionCount, err := graph.persist(ctx, questionRepo, s.BatchSize)
		if err != nil {
			return err
		}

		if err := bankRepo.UpdateTotalCount(ctx, bank.ID, questionCount); err != nil {
			return fmt.Errorf("update total count: %w", err)
		}

		result.BankID = bank.ID
		result.QuestionCount = questionCount
		result.OptionCount = optionCount
		return nil
	})
	if err != nil {
		logger.Log.Error("Import transaction rolled back",
			zap.String("bank_name", name),
			zap.Int("records", len(records)),
			zap.Error(err),
		)
		return nil, util.StorageError("import", err)
	}

	monitoring.ImportedQuestions.Add(float64(result.QuestionCount))
	logger.Log.Info("Question bank imported",
		zap.Uint("bank_id", result.BankID),
		zap.Int("questions", result.QuestionCount),
		zap.Int("options", result.OptionCount),
	)

	s.Statistics.Invalidate(ctx)
	result.ArchiveKey = s.archive(ctx, result.BankID, req.Payload)
	return result, nil
}

// archive 归档失败不影响已提交的导入
func (s *ImportService) archive(ctx context.Context, bankID uint, payload string) string {
	if !s.ArchivePayloads || s.Storage == nil {
		return ""
	}
	key, err := s.Storage.Archive(ctx, bankID, payload)
	if err != nil {
		logger.Log.Warn("Failed to archive import payload", zap.Uint("bank_id", bankID), zap.Error(err))
		return ""
	}
	if err := s.BankRepo.SetArchiveKey(ctx, bankID, key); err != nil {
		logger.Log.Warn("Failed to record archive key", zap.Uint("bank_id", bankID), zap.String("key", key), zap.Error(err))
	}
	return key
}

func importOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case util.IsClientError(err):
		return "rejected"
	default:
		return "failed"
	}
}
