package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("resource state conflict")

// ErrConsistencyViolation indicates an invariant the ledger protocol should have kept was broken.
// It is a defect, not a recoverable condition.
var ErrConsistencyViolation = errors.New("consistency violation")

// ErrPersistence indicates a storage step inside a unit of work failed. The unit was rolled back.
var ErrPersistence = errors.New("persistence failure")

// ErrInternal is returned when the cause should not be exposed to the caller.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code together with the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewPersistenceError wraps a storage failure so that errors.Is(err, ErrPersistence) holds
// while the driver error stays reachable through errors.As.
func NewPersistenceError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: errors.Join(ErrPersistence, err)}
}
