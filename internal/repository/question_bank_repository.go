package repository

import (
	"context"

	"question_bank_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionBankRepository struct {
	DB *gorm.DB
}

func NewQuestionBankRepository(db *gorm.DB) *QuestionBankRepository {
	return &QuestionBankRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库，事务内的所有读写都必须走 tx
func (r *QuestionBankRepository) WithTx(tx *gorm.DB) *QuestionBankRepository {
	return &QuestionBankRepository{DB: tx}
}

func (r *QuestionBankRepository) Create(ctx context.Context, bank *model.QuestionBank) error {
	return r.DB.WithContext(ctx).Omit("Questions").Create(bank).Error
}

func (r *QuestionBankRepository) FindByID(ctx context.Context, id uint) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	err := r.DB.WithContext(ctx).First(&bank, id).Error
	return &bank, err
}

func (r *QuestionBankRepository) List(ctx context.Context) ([]model.QuestionBank, error) {
	var banks []model.QuestionBank
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&banks).Error
	return banks, err
}

func (r *QuestionBankRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.QuestionBank{}).Count(&n).Error
	return n, err
}

func (r *QuestionBankRepository) UpdateTotalCount(ctx context.Context, id uint, total int) error {
	return r.DB.WithContext(ctx).Model(&model.QuestionBank{}).
		Where("id = ?", id).
		Update("total_count", total).
		Error
}

func (r *QuestionBankRepository) SetArchiveKey(ctx context.Context, id uint, key string) error {
	return r.DB.WithContext(ctx).Model(&model.QuestionBank{}).
		Where("id = ?", id).
		Update("archive_key", key).
		Error
}

// RefreshProgressCounters 根据题目的作答状态重新计算已完成数和错题数
func (r *QuestionBankRepository) RefreshProgressCounters(ctx context.Context, id uint) error {
	db := r.DB.WithContext(ctx)

	var completed, wrong int64
	if err := db.Model(&model.Question{}).
		Where("bank_id = ? AND is_completed = ?", id, true).
		Count(&completed).Error; err != nil {
		return err
	}
	if err := db.Model(&model.Question{}).
		Where("bank_id = ? AND is_completed = ? AND is_correct = ?", id, true, false).
		Count(&wrong).Error; err != nil {
		return err
	}

	return db.Model(&model.QuestionBank{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed_count": completed,
			"wrong_count":     wrong,
		}).Error
}

// Delete 依次删除选项、题目和题库本身；不依赖数据库的外键级联
func (r *QuestionBankRepository) Delete(ctx context.Context, id uint) error {
	db := r.DB.WithContext(ctx)

	questionIDs := db.Model(&model.Question{}).Select("id").Where("bank_id = ?", id)
	if err := db.Where("question_id IN (?)", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
		return err
	}
	if err := db.Where("bank_id = ?", id).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.QuestionBank{}, id).Error
}
