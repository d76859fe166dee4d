package util

import (
	"errors"
	"fmt"
)

// 客户端输入错误：不重试，直接返回给调用方
var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrSchemaViolation  = errors.New("schema violation")
	ErrEmptyBatch       = errors.New("empty question batch")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
)

// ErrStorageFailure 存储层错误，事务已回滚
var ErrStorageFailure = errors.New("storage failure")

// RecordError 定位到具体某一行/某一条记录的导入错误，Unwrap 后得到上面的哨兵错误。
type RecordError struct {
	Kind   error
	Line   int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%v: record %d: %s", e.Kind, e.Line, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return e.Kind
}

func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageFailure, op, err)
}

// IsClientError 调用方可以通过修改输入解决的错误
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedPayload) ||
		errors.Is(err, ErrSchemaViolation) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrInvalidArgument)
}
