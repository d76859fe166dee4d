package repository

import (
	"context"

	"question_bank_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) WithTx(tx *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: tx}
}

// TypeStat 按题型聚合的统计
type TypeStat struct {
	Type           model.QuestionType
	Count          int64
	CompletedCount int64
	CorrectCount   int64
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, id).Error
	return &q, err
}

// FindByBankIDs 按 id 升序返回若干题库的全部题目（不含选项）
func (r *QuestionRepository) FindByBankIDs(ctx context.Context, bankIDs ...uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.WithContext(ctx).
		Where("bank_id IN ?", bankIDs).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// FindOptionsByBankIDs 返回若干题库下所有题目的选项
func (r *QuestionRepository) FindOptionsByBankIDs(ctx context.Context, bankIDs ...uint) ([]model.QuestionOption, error) {
	db := r.DB.WithContext(ctx)
	var options []model.QuestionOption
	questionIDs := db.Model(&model.Question{}).Select("id").Where("bank_id IN ?", bankIDs)
	err := db.Where("question_id IN (?)", questionIDs).
		Order("question_id ASC, label ASC").
		Find(&options).Error
	return options, err
}

func sortedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("label ASC")
}

// FindByBank wrongOnly 为 true 时只返回已作答且答错的题目
func (r *QuestionRepository) FindByBank(ctx context.Context, bankID uint, wrongOnly bool) ([]model.Question, error) {
	var questions []model.Question
	query := r.DB.WithContext(ctx).
		Preload("Options", sortedOptions).
		Where("bank_id = ?", bankID)
	if wrongOnly {
		query = query.Where("is_completed = ? AND is_correct = ?", true, false)
	}
	err := query.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByBankAndType(ctx context.Context, bankID uint, qt model.QuestionType) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.WithContext(ctx).
		Preload("Options", sortedOptions).
		Where("bank_id = ? AND type = ?", bankID, qt).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// CreateInBatches 批量插入题目，插入后每个元素的 ID 已回填。
// 选项由调用方在拿到 ID 后单独插入。
func (r *QuestionRepository) CreateInBatches(ctx context.Context, questions []model.Question, batchSize int) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Omit(clause.Associations).
		CreateInBatches(&questions, batchSize).Error
}

func (r *QuestionRepository) CreateOptionsInBatches(ctx context.Context, options []model.QuestionOption, batchSize int) error {
	if len(options) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(&options, batchSize).Error
}

// SaveAnswer 记录作答结果，重复提交时后写覆盖先写
func (r *QuestionRepository) SaveAnswer(ctx context.Context, id uint, userAnswer string, isCorrect bool) error {
	return r.DB.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"user_answer":  userAnswer,
			"is_completed": true,
			"is_correct":   isCorrect,
		}).Error
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Count(&n).Error
	return n, err
}

// TypeStatistics 一次分组查询得到各题型的题量、完成数和正确数
func (r *QuestionRepository) TypeStatistics(ctx context.Context) ([]TypeStat, error) {
	var stats []TypeStat
	err := r.DB.WithContext(ctx).Model(&model.Question{}).
		Select("type, COUNT(*) AS count, " +
			"SUM(CASE WHEN is_completed THEN 1 ELSE 0 END) AS completed_count, " +
			"SUM(CASE WHEN is_completed AND is_correct THEN 1 ELSE 0 END) AS correct_count").
		Group("type").
		Order("type").
		Scan(&stats).Error
	return stats, err
}
