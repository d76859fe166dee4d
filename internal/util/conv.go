package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID 解析路径/查询参数中的正整数 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer, got %q", ErrInvalidArgument, s)
	}
	return uint(id), nil
}

func StringPtr(s string) *string {
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}

// Deref 取指针值，nil 时返回空串
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
