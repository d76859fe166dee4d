package model

// Question 题目。UserAnswer/IsCompleted/IsCorrect 是学习进度，
// 只有答案校验会修改它们；IsCompleted 为 false 时 IsCorrect 必须为 nil。
// swagger:model Question
type Question struct {
	BaseModel
	BankID        uint         `gorm:"index;not null" json:"bankId"`
	Content       string       `gorm:"type:text;not null" json:"content"`
	Type          QuestionType `gorm:"size:20;not null;index" json:"type"`
	CorrectAnswer *string      `gorm:"type:text" json:"correctAnswer"`
	Analysis      *string      `gorm:"type:text" json:"analysis"`
	UserAnswer    *string      `gorm:"type:text" json:"userAnswer"`
	IsCompleted   bool         `gorm:"default:false" json:"isCompleted"`
	IsCorrect     *bool        `json:"isCorrect"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// ResetProgress 清空学习进度，导入和合并时新题目都从未作答状态开始。
func (q *Question) ResetProgress() {
	q.UserAnswer = nil
	q.IsCompleted = false
	q.IsCorrect = nil
}

// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	QuestionID uint   `gorm:"not null;uniqueIndex:idx_question_option_label" json:"questionId"`
	Label      string `gorm:"size:32;not null;uniqueIndex:idx_question_option_label" json:"label"` // A, B, C, D
	Content    string `gorm:"type:text" json:"content"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
