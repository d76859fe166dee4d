package model

// ImportRequest 导入题库请求，payload 为大模型输出的 JSON 数组或 JSON Lines
type ImportRequest struct {
	BankName    string `json:"bankName"`
	Description string `json:"description"`
	Payload     string `json:"payload"`
}

type ImportResult struct {
	BankID        uint   `json:"bankId"`
	QuestionCount int    `json:"questionCount"`
	OptionCount   int    `json:"optionCount"`
	ArchiveKey    string `json:"archiveKey,omitempty"`
}

type MergeBanksRequest struct {
	BankID1     uint   `json:"bankId1" binding:"required"`
	BankID2     uint   `json:"bankId2" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type MergeBanksResult struct {
	NewBankID     uint `json:"newBankId"`
	QuestionCount int  `json:"questionCount"`
}

type QuestionBankDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	TotalCount     int    `json:"totalCount"`
	CompletedCount int    `json:"completedCount"`
	WrongCount     int    `json:"wrongCount"`
	ArchiveKey     string `json:"archiveKey,omitempty"`
}

type QuestionOptionDTO struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type QuestionDTO struct {
	ID            uint                `json:"id"`
	BankID        uint                `json:"bankId"`
	Content       string              `json:"content"`
	Type          QuestionType        `json:"type"`
	Options       []QuestionOptionDTO `json:"options"`
	UserAnswer    *string             `json:"userAnswer"`
	CorrectAnswer *string             `json:"correctAnswer"`
	Analysis      *string             `json:"analysis"`
	IsCompleted   bool                `json:"isCompleted"`
	IsCorrect     *bool               `json:"isCorrect"`
}

// VerifyAnswerRequest userAnswer 允许为 null，按空答案处理
type VerifyAnswerRequest struct {
	QuestionID uint    `json:"questionId" binding:"required"`
	UserAnswer *string `json:"userAnswer"`
}

type AnswerVerificationResponse struct {
	QuestionID    uint    `json:"questionId"`
	UserAnswer    string  `json:"userAnswer"`
	CorrectAnswer string  `json:"correctAnswer"`
	IsCorrect     bool    `json:"isCorrect"`
	Analysis      *string `json:"analysis"`
	Message       string  `json:"message"`
}

type TypeStatistics struct {
	Count          int64 `json:"count"`
	CompletedCount int64 `json:"completedCount"`
	CorrectCount   int64 `json:"correctCount"`
}

type StatisticsOverview struct {
	BankTotal     int64                     `json:"bankTotal"`
	QuestionTotal int64                     `json:"questionTotal"`
	ByType        map[string]TypeStatistics `json:"byType"`
}
