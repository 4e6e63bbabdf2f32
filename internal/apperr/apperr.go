package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrTurnoNotFound 表示本地集合找不到指定 turno
	ErrTurnoNotFound = errors.New("turno not found")
	// ErrSnapshotNotFound 表示快取中沒有購物車快照
	ErrSnapshotNotFound = errors.New("cart snapshot not found")
)

// ValidationError 送出前的本地驗證錯誤，不會發出任何網路請求
// Field 指出違規欄位，讓 UI 可以做欄位層級的提示
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StateError 在不可編輯狀態下嘗試變更 turno
// 一律在呼叫外部服務之前就擋下
type StateError struct {
	TurnoID string `json:"turno_id"`
	Estado  string `json:"estado"`
}

func (e *StateError) Error() string {
	return fmt.Sprintf("turno %s is not editable in estado %s: only pending appointments can be edited", e.TurnoID, e.Estado)
}

// ServiceError 外部服務拒絕或失敗
// Message 原封不動轉給呼叫端，不做自動重試
type ServiceError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
}

// PersistenceError 本地快取無法使用或內容毀損
// 非致命: 購物車退回初始狀態並記 log，不對使用者回報
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cart persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsValidationError 判斷是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStateError 判斷是否為狀態錯誤
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
