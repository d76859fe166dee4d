package service

import (
	"context"
	"encoding/json"
	"time"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const statisticsCacheKey = "question_bank:statistics:overview"

// StatisticsService 统计概览。Redis 为 nil 时不缓存。
type StatisticsService struct {
	BankRepo     *repository.QuestionBankRepository
	QuestionRepo *repository.QuestionRepository
	Redis        *redis.Client
	TTL          time.Duration
}

func NewStatisticsService(bankRepo *repository.QuestionBankRepository, questionRepo *repository.QuestionRepository, rdb *redis.Client, ttl time.Duration) *StatisticsService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &StatisticsService{
		BankRepo:     bankRepo,
		QuestionRepo: questionRepo,
		Redis:        rdb,
		TTL:          ttl,
	}
}

func (s *StatisticsService) Overview(ctx context.Context) (*model.StatisticsOverview, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	bankTotal, err := s.BankRepo.Count(ctx)
	if err != nil {
		return nil, util.StorageError("count banks", err)
	}
	questionTotal, err := s.QuestionRepo.Count(ctx)
	if err != nil {
		return nil, util.StorageError("count questions", err)
	}
	stats, err := s.QuestionRepo.TypeStatistics(ctx)
	if err != nil {
		return nil, util.StorageError("question statistics", err)
	}

	overview := &model.StatisticsOverview{
		BankTotal:     bankTotal,
		QuestionTotal: questionTotal,
		ByType:        make(map[string]model.TypeStatistics, len(model.QuestionTypes)),
	}
	for _, qt := range model.QuestionTypes {
		overview.ByType[qt.String()] = model.TypeStatistics{}
	}
	for _, st := range stats {
		if _, err := model.ParseQuestionType(string(st.Type)); err != nil {
			continue
		}
		overview.ByType[st.Type.String()] = model.TypeStatistics{
			Count:          st.Count,
			CompletedCount: st.CompletedCount,
			CorrectCount:   st.CorrectCount,
		}
	}

	s.toCache(ctx, overview)
	return overview, nil
}

// Invalidate 在题库或作答数据变化后调用，失败只记录日志
func (s *StatisticsService) Invalidate(ctx context.Context) {
	if s == nil || s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, statisticsCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate statistics cache", zap.Error(err))
	}
}

func (s *StatisticsService) fromCache(ctx context.Context) *model.StatisticsOverview {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(ctx, statisticsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("Failed to read statistics cache", zap.Error(err))
		}
		return nil
	}
	var overview model.StatisticsOverview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil
	}
	return &overview
}

func (s *StatisticsService) toCache(ctx context.Context, overview *model.StatisticsOverview) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, statisticsCacheKey, data, s.TTL).Err(); err != nil {
		logger.Log.Warn("Failed to write statistics cache", zap.Error(err))
	}
}
