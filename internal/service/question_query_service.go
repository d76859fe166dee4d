package service

import (
	"context"
	"fmt"
	"strings"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
)

type QuestionQueryService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionQueryService(questionRepo *repository.QuestionRepository) *QuestionQueryService {
	return &QuestionQueryService{QuestionRepo: questionRepo}
}

// QueryQuestions scope 为 wrong 时只返回错题，其余取值返回全部题目
func (s *QuestionQueryService) QueryQuestions(ctx context.Context, bankID uint, scope string) ([]model.QuestionDTO, error) {
	if bankID == 0 {
		return nil, fmt.Errorf("%w: bank id must be positive", util.ErrInvalidArgument)
	}
	wrongOnly := strings.EqualFold(strings.TrimSpace(scope), util.QueryScopeWrong)

	questions, err := s.QuestionRepo.FindByBank(ctx, bankID, wrongOnly)
	if err != nil {
		return nil, util.StorageError("query questions", err)
	}
	return toQuestionDTOs(questions), nil
}

// QueryQuestionsByType 未知题型返回空列表
func (s *QuestionQueryService) QueryQuestionsByType(ctx context.Context, bankID uint, questionType string) ([]model.QuestionDTO, error) {
	if bankID == 0 {
		return nil, fmt.Errorf("%w: bank id must be positive", util.ErrInvalidArgument)
	}
	qt, err := model.ParseQuestionType(strings.TrimSpace(questionType))
	if err != nil {
		return []model.QuestionDTO{}, nil
	}

	questions, err := s.QuestionRepo.FindByBankAndType(ctx, bankID, qt)
	if err != nil {
		return nil, util.StorageError("query questions by type", err)
	}
	return toQuestionDTOs(questions), nil
}

func toQuestionDTOs(questions []model.Question) []model.QuestionDTO {
	dtos := make([]model.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		opts := make([]model.QuestionOptionDTO, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, model.QuestionOptionDTO{Label: o.Label, Text: o.Content})
		}
		dtos = append(dtos, model.QuestionDTO{
			ID:            q.ID,
			BankID:        q.BankID,
			Content:       q.Content,
			Type:          q.Type,
			Options:       opts,
			UserAnswer:    q.UserAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Analysis:      q.Analysis,
			IsCompleted:   q.IsCompleted,
			IsCorrect:     q.IsCorrect,
		})
	}
	return dtos
}
