package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Corporate / GST errors
	ErrCodeInvalidGSTIN     ErrorCode = "INVALID_GSTIN"
	ErrCodeInvalidStateCode ErrorCode = "INVALID_STATE_CODE"
	ErrCodeCompanyExists    ErrorCode = "COMPANY_EXISTS"
	ErrCodeCompanyNotFound  ErrorCode = "COMPANY_NOT_FOUND"
	ErrCodeCreditExceeded   ErrorCode = "CREDIT_EXCEEDED"
	ErrCodeInvalidTariff    ErrorCode = "INVALID_TARIFF"

	// Housekeeping errors
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeTaskNotFound      ErrorCode = "TASK_NOT_FOUND"
	ErrCodeInvalidAssignee   ErrorCode = "INVALID_ASSIGNEE"

	// Inventory errors
	ErrCodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	ErrCodeItemNotFound      ErrorCode = "ITEM_NOT_FOUND"

	// Allotment errors
	ErrCodeOverAllocated   ErrorCode = "OVER_ALLOCATED"
	ErrCodeChannelConflict ErrorCode = "CHANNEL_CONFLICT"

	// Widget errors
	ErrCodeWidgetNotFound  ErrorCode = "WIDGET_NOT_FOUND"
	ErrCodeWidgetInactive  ErrorCode = "WIDGET_INACTIVE"
	ErrCodeInvalidEvent    ErrorCode = "INVALID_EVENT"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
)

// AppError is the application error type carried through services
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts an AppError from err, or nil
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Guest errors
	ErrGuestNotFound    = errors.New("guest not found")
	ErrGuestBlacklisted = errors.New("guest is blacklisted")

	// Corporate errors
	ErrCompanyNotFound    = errors.New("company not found")
	ErrAccountNotPending  = errors.New("account is not pending approval")
	ErrCreditLimitReached = errors.New("credit limit reached")

	// Housekeeping errors
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Inventory errors
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
