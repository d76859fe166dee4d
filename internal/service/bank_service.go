package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/logger"
	"question_bank_backend/pkg/monitoring"
	"question_bank_backend/pkg/tracing"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BankService struct {
	DB           *gorm.DB
	BankRepo     *repository.QuestionBankRepository
	QuestionRepo *repository.QuestionRepository
	Statistics   *StatisticsService
	Storage      *StorageService
	BatchSize    int
}

func NewBankService(db *gorm.DB, bankRepo *repository.QuestionBankRepository, questionRepo *repository.QuestionRepository,
	stats *StatisticsService, storage *StorageService, cfg *config.ImportConfig) *BankService {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = util.DefaultImportBatchSize
	}
	return &BankService{
		DB:           db,
		BankRepo:     bankRepo,
		QuestionRepo: questionRepo,
		Statistics:   stats,
		Storage:      storage,
		BatchSize:    batchSize,
	}
}

func (s *BankService) ListBanks(ctx context.Context) ([]model.QuestionBankDTO, error) {
	banks, err := s.BankRepo.List(ctx)
	if err != nil {
		return nil, util.StorageError("list banks", err)
	}

	dtos := make([]model.QuestionBankDTO, 0, len(banks))
	if err := copier.Copy(&dtos, &banks); err != nil {
		return nil, err
	}
	return dtos, nil
}

// DeleteBank 删除题库及其下所有题目和选项
func (s *BankService) DeleteBank(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "BankService.DeleteBank")
	defer func() { tracing.EndSpan(span, err) }()

	if id == 0 {
		return fmt.Errorf("%w: bank id must be positive", util.ErrInvalidArgument)
	}
	bank, err := s.findBank(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.BankRepo.WithTx(tx).Delete(ctx, id)
	}); err != nil {
		return util.StorageError("delete bank", err)
	}

	logger.Log.Info("Question bank deleted", zap.Uint("bank_id", id))
	s.Statistics.Invalidate(ctx)
	s.removeArchive(ctx, bank)
	return nil
}

// removeArchive 题库已删除，归档清理失败只记日志
func (s *BankService) removeArchive(ctx context.Context, bank *model.QuestionBank) {
	if bank.ArchiveKey == "" || s.Storage == nil {
		return
	}
	if err := s.Storage.Delete(ctx, bank.ArchiveKey); err != nil {
		logger.Log.Warn("Failed to remove import archive",
			zap.Uint("bank_id", bank.ID),
			zap.String("key", bank.ArchiveKey),
			zap.Error(err),
		)
	}
}

// MergeBanks 把两个题库的题目和选项复制到新题库，源题库保持不变。
// 新题目的学习进度全部清空。
func (s *BankService) MergeBanks(ctx context.Context, req model.MergeBanksRequest) (result *model.MergeBanksResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "BankService.MergeBanks")
	defer func() { tracing.EndSpan(span, err) }()
	defer func() { monitoring.MergeCounter.WithLabelValues(importOutcome(err)).Inc() }()

	if req.BankID1 == 0 || req.BankID2 == 0 {
		return nil, fmt.Errorf("%w: bank ids must be positive", util.ErrInvalidArgument)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: merged bank name must not be blank", util.ErrInvalidArgument)
	}
	for _, id := range []uint{req.BankID1, req.BankID2} {
		if _, err := s.findBank(ctx, id); err != nil {
			return nil, err
		}
	}

	result = &model.MergeBanksResult{}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bankRepo := s.BankRepo.WithTx(tx)
		questionRepo := s.QuestionRepo.WithTx(tx)

		bank := &model.QuestionBank{Name: name, Description: req.Description}
		if err := bankRepo.Create(ctx, bank); err != nil {
			return fmt.Errorf("create bank: %w", err)
		}

		sources, err := questionRepo.FindByBankIDs(ctx, req.BankID1, req.BankID2)
		if err != nil {
			return fmt.Errorf("load source questions: %w", err)
		}
		remap, err := copyQuestions(ctx, questionRepo, sources, bank.ID, s.BatchSize)
		if err != nil {
			return err
		}

		sourceOptions, err := questionRepo.FindOptionsByBankIDs(ctx, req.BankID1, req.BankID2)
		if err != nil {
			return fmt.Errorf("load source options: %w", err)
		}
		options, err := remap.stamp(sourceOptions)
		if err != nil {
			return err
		}
		if err := questionRepo.CreateOptionsInBatches(ctx, options, s.BatchSize); err != nil {
			return fmt.Errorf("insert options: %w", err)
		}

		if err := bankRepo.UpdateTotalCount(ctx, bank.ID, len(sources)); err != nil {
			return fmt.Errorf("update total count: %w", err)
		}

		result.NewBankID = bank.ID
		result.QuestionCount = len(sources)
		return nil
	})
	if err != nil {
		logger.Log.Error("Merge transaction rolled back",
			zap.Uint("bank_id_1", req.BankID1),
			zap.Uint("bank_id_2", req.BankID2),
			zap.Error(err),
		)
		return nil, util.StorageError("merge banks", err)
	}

	monitoring.MergedQuestions.Add(float64(result.QuestionCount))
	logger.Log.Info("Question banks merged",
		zap.Uint("bank_id_1", req.BankID1),
		zap.Uint("bank_id_2", req.BankID2),
		zap.Uint("new_bank_id", result.NewBankID),
		zap.Int("questions", result.QuestionCount),
	)
	s.Statistics.Invalidate(ctx)
	return result, nil
}

func (s *BankService) findBank(ctx context.Context, id uint) (*model.QuestionBank, error) {
	bank, err := s.BankRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question bank %d", util.ErrNotFound, id)
		}
		return nil, util.StorageError("find bank", err)
	}
	return bank, nil
}
