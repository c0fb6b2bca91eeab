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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// Ledger errors. Each one also matches its generic class with errors.Is,
// e.g. errors.Is(ErrInvalidCurrency, ErrValidation) is true.
var (
	ErrInvalidCurrency = newClassError("unsupported currency", ErrValidation)
	ErrInvalidAmount   = newClassError("invalid amount", ErrValidation)
	ErrInvalidRate     = newClassError("invalid exchange rate", ErrValidation)
	ErrWalletNotFound  = newClassError("wallet not found", ErrNotFound)
	ErrRateNotSet      = errors.New("exchange rate has not been set")
	ErrNotEnoughMoney  = errors.New("not enough money")
)

// ErrRefreshTokenExpired indicates the stored refresh token can no longer be used.
var ErrRefreshTokenExpired = newClassError("refresh token expired", ErrUnauthorized)

type classError struct {
	msg   string
	class error
}

func newClassError(msg string, class error) error {
	return &classError{msg: msg, class: class}
}

func (e *classError) Error() string { return e.msg }

func (e *classError) Unwrap() error { return e.class }

// AppError carries an HTTP-ish status code alongside a wrapped infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(404, message, ErrNotFound)
}

// NewValidationError creates an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(400, message, ErrValidation)
}
