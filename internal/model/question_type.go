package model

import "fmt"

type QuestionType string

const (
	QuestionTypeSingle      QuestionType = "single"
	QuestionTypeMultiple    QuestionType = "multiple"
	QuestionTypeTrueFalse   QuestionType = "true_false"
	QuestionTypeFillBlank   QuestionType = "fill_blank"
	QuestionTypeShortAnswer QuestionType = "short_answer"
)

// QuestionTypes 所有支持的题型，顺序即展示顺序
var QuestionTypes = []QuestionType{
	QuestionTypeSingle,
	QuestionTypeMultiple,
	QuestionTypeTrueFalse,
	QuestionTypeFillBlank,
	QuestionTypeShortAnswer,
}

func ParseQuestionType(s string) (QuestionType, error) {
	switch t := QuestionType(s); t {
	case QuestionTypeSingle, QuestionTypeMultiple, QuestionTypeTrueFalse,
		QuestionTypeFillBlank, QuestionTypeShortAnswer:
		return t, nil
	default:
		return "", fmt.Errorf("unknown question type %q", s)
	}
}

// HasOptions 单选和多选题才有选项
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeSingle, QuestionTypeMultiple:
		return true
	case QuestionTypeTrueFalse, QuestionTypeFillBlank, QuestionTypeShortAnswer:
		return false
	default:
		return false
	}
}

func (t QuestionType) String() string {
	return string(t)
}
