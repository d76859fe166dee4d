package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/logger"
	"question_bank_backend/pkg/monitoring"
	"question_bank_backend/pkg/tracing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	messageCorrect = "回答正确！🎉"
	messageWrong   = "回答错误，继续加油！"
)

type AnswerService struct {
	DB           *gorm.DB
	BankRepo     *repository.QuestionBankRepository
	QuestionRepo *repository.QuestionRepository
	Statistics   *StatisticsService
}

func NewAnswerService(db *gorm.DB, bankRepo *repository.QuestionBankRepository, questionRepo *repository.QuestionRepository, stats *StatisticsService) *AnswerService {
	return &AnswerService{
		DB:           db,
		BankRepo:     bankRepo,
		QuestionRepo: questionRepo,
		Statistics:   stats,
	}
}

// Verify 校验答案并记录作答结果。
// 同一道题重复提交不加锁，以最后一次提交为准。
func (s *AnswerService) Verify(ctx context.Context, questionID uint, userAnswer *string) (resp *model.AnswerVerificationResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "AnswerService.Verify")
	defer func() { tracing.EndSpan(span, err) }()

	if questionID == 0 {
		return nil, fmt.Errorf("%w: question id must be positive", util.ErrInvalidArgument)
	}

	question, err := s.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", util.ErrNotFound, questionID)
		}
		return nil, util.StorageError("find question", err)
	}

	normalized := NormalizeAnswer(userAnswer, question.Type)
	isCorrect := CompareAnswer(normalized, question.CorrectAnswer, question.Type)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.QuestionRepo.WithTx(tx).SaveAnswer(ctx, question.ID, normalized, isCorrect); err != nil {
			return fmt.Errorf("save answer: %w", err)
		}
		if err := s.BankRepo.WithTx(tx).RefreshProgressCounters(ctx, question.BankID); err != nil {
			return fmt.Errorf("refresh bank counters: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Error("Failed to record answer", zap.Uint("question_id", questionID), zap.Error(err))
		return nil, util.StorageError("verify answer", err)
	}

	monitoring.VerifyCounter.WithLabelValues(question.Type.String(), strconv.FormatBool(isCorrect)).Inc()
	s.Statistics.Invalidate(ctx)

	resp = &model.AnswerVerificationResponse{
		QuestionID:    question.ID,
		UserAnswer:    normalized,
		CorrectAnswer: FormatCorrectAnswer(question.CorrectAnswer, question.Type),
		IsCorrect:     isCorrect,
		Analysis:      question.Analysis,
		Message:       messageWrong,
	}
	if isCorrect {
		resp.Message = messageCorrect
	}
	return resp, nil
}
