package model

import (
	"time"
)

// BaseModel 题库相关表的公共字段。
// 不使用软删除：删除题库需要真实地级联删除题目和选项。
// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
