package types

import (
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// InternalServiceError is the error code for internal service errors,
	// including failures of the asset transfer service.
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"

	Unauthorized              ErrorCode = "UNAUTHORIZED"
	AlreadyExists             ErrorCode = "ALREADY_EXISTS"
	NotFound                  ErrorCode = "NOT_FOUND"
	SystemPaused              ErrorCode = "SYSTEM_PAUSED"
	InvalidDuration           ErrorCode = "INVALID_DURATION"
	CollectionNotActive       ErrorCode = "COLLECTION_NOT_ACTIVE"
	PositionNotActive         ErrorCode = "POSITION_NOT_ACTIVE"
	NotPositionOwner          ErrorCode = "NOT_POSITION_OWNER"
	StakingPeriodNotCompleted ErrorCode = "STAKING_PERIOD_NOT_COMPLETED"
	ReasonRequired            ErrorCode = "REASON_REQUIRED"
	EmergencyDelayNotMet      ErrorCode = "EMERGENCY_DELAY_NOT_MET"
	EmergencyAlreadyExecuted  ErrorCode = "EMERGENCY_ALREADY_EXECUTED"
	TransferFailed            ErrorCode = "TRANSFER_FAILED"
)

// Error wraps a failure with the HTTP status it maps to and a stable error
// code callers can branch on.
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.ErrorCode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, code ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  code,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, code ErrorCode, msg string) *Error {
	return NewError(statusCode, code, fmt.Errorf("%s", msg))
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

func NewValidationFailedError(err error) *Error {
	return NewError(http.StatusBadRequest, ValidationError, err)
}
