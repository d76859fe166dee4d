package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"
)

// maxLabelLength 与 question_options.label 列宽一致
const maxLabelLength = 32

// QuestionRecord 通过校验的一条题目记录
type QuestionRecord struct {
	Line          int
	Type          model.QuestionType
	Content       string
	CorrectAnswer string
	Analysis      *string
	Options       []OptionRecord
}

type OptionRecord struct {
	Label string
	Text  string
}

// ValidateRecords 按顺序校验记录，遇到第一条非法记录即返回 ErrSchemaViolation。
func ValidateRecords(raws []RawRecord) ([]QuestionRecord, error) {
	if len(raws) == 0 {
		return nil, util.ErrEmptyBatch
	}

	records := make([]QuestionRecord, 0, len(raws))
	for _, raw := range raws {
		rec, err := validateRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func validateRecord(raw RawRecord) (QuestionRecord, error) {
	rec := QuestionRecord{Line: raw.Line}
	violation := func(format string, args ...interface{}) error {
		return &util.RecordError{
			Kind:   util.ErrSchemaViolation,
			Line:   raw.Line,
			Reason: fmt.Sprintf(format, args...),
		}
	}

	typeName, ok, err := stringField(raw.Fields, "type")
	if err != nil || !ok {
		return rec, violation("field \"type\" is required and must be a string")
	}
	qt, err := model.ParseQuestionType(strings.TrimSpace(typeName))
	if err != nil {
		return rec, violation("%v", err)
	}
	rec.Type = qt

	content, ok, err := stringField(raw.Fields, "content")
	if err != nil || !ok {
		return rec, violation("field \"content\" is required and must be a string")
	}
	rec.Content = content

	answer, ok, err := answerField(raw.Fields["correct_answer"])
	if err != nil || !ok {
		return rec, violation("field \"correct_answer\" is required")
	}
	rec.CorrectAnswer = answer

	analysis, ok, err := stringField(raw.Fields, "analysis")
	if err != nil {
		return rec, violation("field \"analysis\" must be a string")
	}
	if ok {
		rec.Analysis = &analysis
	}

	if qt.HasOptions() {
		opts, err := optionsField(raw.Fields["options"])
		if err != nil {
			return rec, violation("%v", err)
		}
		rec.Options = opts
	}
	return rec, nil
}

// stringField ok 为 false 表示字段缺失或为 null
func stringField(fields map[string]json.RawMessage, key string) (string, bool, error) {
	raw, exists := fields[key]
	if !exists || isNull(raw) {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, err
	}
	return s, true, nil
}

// answerField 标准答案除字符串外也接受数字、布尔值（按字面量文本保存）
// 和字符串数组（多选题，保存为紧凑 JSON）
func answerField(raw json.RawMessage) (string, bool, error) {
	if len(raw) == 0 || isNull(raw) {
		return "", false, nil
	}
	trimmed := bytes.TrimSpace(raw)
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	case '[':
		var labels []string
		if err := json.Unmarshal(trimmed, &labels); err != nil {
			return "", false, err
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", false, err
		}
		return buf.String(), true, nil
	case '{':
		return "", false, fmt.Errorf("object is not a valid answer")
	default:
		// 数字或 true/false
		var v interface{}
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return "", false, err
		}
		return string(trimmed), true, nil
	}
}

func optionsField(raw json.RawMessage) ([]OptionRecord, error) {
	if len(raw) == 0 || isNull(raw) {
		return nil, fmt.Errorf("field \"options\" is required for choice questions")
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("field \"options\" must be an array of objects")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("field \"options\" must not be empty")
	}

	seen := make(map[string]bool, len(items))
	opts := make([]OptionRecord, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("option %d must be an object", i+1)
		}
		label, ok, err := stringField(item, "label")
		label = strings.TrimSpace(label)
		if err != nil || !ok || label == "" {
			return nil, fmt.Errorf("option %d: \"label\" is required", i+1)
		}
		if utf8.RuneCountInString(label) > maxLabelLength {
			return nil, fmt.Errorf("option %d: label longer than %d characters", i+1, maxLabelLength)
		}
		text, ok, err := stringField(item, "text")
		if err != nil || !ok {
			return nil, fmt.Errorf("option %d: \"text\" is required", i+1)
		}
		if seen[label] {
			return nil, fmt.Errorf("duplicate option label %q", label)
		}
		seen[label] = true
		opts = append(opts, OptionRecord{Label: label, Text: text})
	}
	return opts, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
