package service

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"question_bank_backend/internal/model"
)

const (
	displayTrue    = "正确"
	displayFalse   = "错误"
	displayMissing = "无"
)

// NormalizeAnswer 将用户提交的答案转换成可比较的标准形式。
// 多选题转换为排序后的 JSON 数组，如 "C, A" -> ["A","C"]；
// 无法解析时退回去掉首尾空白的原始字符串，不报错。
func NormalizeAnswer(answer *string, qt model.QuestionType) string {
	if answer == nil {
		return ""
	}
	trimmed := strings.TrimSpace(*answer)

	switch qt {
	case model.QuestionTypeMultiple:
		labels, ok := parseAnswerLabels(trimmed)
		if !ok {
			return trimmed
		}
		sort.Strings(labels)
		encoded, err := encodeLabels(labels)
		if err != nil {
			return trimmed
		}
		return encoded
	case model.QuestionTypeSingle, model.QuestionTypeTrueFalse,
		model.QuestionTypeFillBlank, model.QuestionTypeShortAnswer:
		return trimmed
	default:
		return trimmed
	}
}

// parseAnswerLabels 解析 ["A","B"] 或 A,B 形式的多选答案。
// 只有一侧方括号时视为格式错误，ok 为 false。
func parseAnswerLabels(answer string) ([]string, bool) {
	s := strings.TrimSpace(answer)
	hasOpen := strings.HasPrefix(s, "[")
	hasClose := strings.HasSuffix(s, "]")
	if hasOpen != hasClose {
		return nil, false
	}
	if hasOpen && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `"`, "")

	labels := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels, true
}

func encodeLabels(labels []string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(labels); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// CompareAnswer 比较标准化后的用户答案与标准答案，标准答案为空一律判错
func CompareAnswer(normalized string, correct *string, qt model.QuestionType) bool {
	if correct == nil {
		return false
	}

	switch qt {
	case model.QuestionTypeMultiple:
		user, okUser := parseAnswerLabels(normalized)
		want, okWant := parseAnswerLabels(*correct)
		if !okUser || !okWant {
			return normalized == *correct
		}
		sort.Strings(user)
		sort.Strings(want)
		if len(user) != len(want) {
			return false
		}
		for i := range user {
			if user[i] != want[i] {
				return false
			}
		}
		return true
	case model.QuestionTypeSingle, model.QuestionTypeTrueFalse,
		model.QuestionTypeFillBlank, model.QuestionTypeShortAnswer:
		return normalized == *correct
	default:
		return normalized == *correct
	}
}

// FormatCorrectAnswer 生成展示给用户的标准答案
func FormatCorrectAnswer(correct *string, qt model.QuestionType) string {
	if correct == nil {
		return displayMissing
	}

	switch qt {
	case model.QuestionTypeTrueFalse:
		if *correct == "1" {
			return displayTrue
		}
		return displayFalse
	case model.QuestionTypeMultiple:
		labels, ok := parseAnswerLabels(*correct)
		if !ok {
			return *correct
		}
		return strings.Join(labels, ", ")
	case model.QuestionTypeSingle, model.QuestionTypeFillBlank, model.QuestionTypeShortAnswer:
		return *correct
	default:
		return *correct
	}
}
