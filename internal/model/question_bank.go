package model

// swagger:model QuestionBank
type QuestionBank struct {
	BaseModel
	Name           string `gorm:"size:255;not null" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	TotalCount     int    `gorm:"default:0" json:"totalCount"`
	CompletedCount int    `gorm:"default:0" json:"completedCount"`
	WrongCount     int    `gorm:"default:0" json:"wrongCount"`
	ArchiveKey     string `gorm:"size:255" json:"archiveKey,omitempty"` // 导入原始数据的归档对象名

	Questions []Question `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuestionBank) TableName() string {
	return "question_banks"
}
