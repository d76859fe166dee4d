package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"question_bank_backend/internal/util"
)

// RawRecord 解析后的一条原始记录，字段值保持原始 JSON，交给校验阶段处理。
// Line 对 JSON Lines 是物理行号，对 JSON 数组是元素序号，均从 1 开始。
type RawRecord struct {
	Line   int
	Fields map[string]json.RawMessage
}

// ParseRecords 把大模型输出解析成有序的原始记录。
// 首个非空白字符为 '[' 时按 JSON 数组解析，否则按 JSON Lines 逐行解析。
// 不涉及任何存储，失败时返回 ErrMalformedPayload 或 ErrEmptyBatch。
func ParseRecords(payload string) ([]RawRecord, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(payload, "\ufeff"))
	if trimmed == "" {
		return nil, util.ErrEmptyBatch
	}

	var (
		records []RawRecord
		err     error
	)
	if trimmed[0] == '[' {
		records, err = parseArray(trimmed)
	} else {
		records, err = parseLines(payload)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, util.ErrEmptyBatch
	}
	return records, nil
}

func parseArray(payload string) ([]RawRecord, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	if _, err := dec.Token(); err != nil {
		return nil, malformed(1, err.Error())
	}

	var records []RawRecord
	for index := 1; dec.More(); index++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformed(index, err.Error())
		}
		fields, err := decodeObject(raw)
		if err != nil {
			return nil, malformed(index, err.Error())
		}
		records = append(records, RawRecord{Line: index, Fields: fields})
	}

	// 结尾的 ']'
	if _, err := dec.Token(); err != nil {
		return nil, malformed(len(records)+1, err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed(len(records)+1, "unexpected content after closing bracket")
	}
	return records, nil
}

func parseLines(payload string) ([]RawRecord, error) {
	var records []RawRecord
	for i, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" {
			continue
		}
		fields, err := decodeObject([]byte(line))
		if err != nil {
			return nil, malformed(i+1, err.Error())
		}
		records = append(records, RawRecord{Line: i + 1, Fields: fields})
	}
	return records, nil
}

// decodeObject 只接受 JSON 对象；null、数组和标量都视为格式错误
func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errors.New("not a JSON object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func malformed(line int, reason string) error {
	return &util.RecordError{Kind: util.ErrMalformedPayload, Line: line, Reason: reason}
}
