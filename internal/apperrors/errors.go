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

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure (e.g. a durable write failed).
var ErrInternal = errors.New("internal error")

// ErrConflict indicates a concurrent operation already applied the requested change.
var ErrConflict = errors.New("conflicting concurrent update")

// Business-rule rejections reported verbatim to the caller.
var (
	// ErrInsufficientFunds indicates a balance debit would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrInsufficientEarnings indicates an earnings debit would drive earnings negative.
	ErrInsufficientEarnings = errors.New("insufficient earnings")

	// ErrUnknownAsset indicates the requested asset name is not in the catalog.
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrDuplicateHolding indicates the account already purchased this asset.
	ErrDuplicateHolding = errors.New("asset already purchased")

	// ErrNoWithdrawalSecret indicates the account never configured a withdrawal secret.
	ErrNoWithdrawalSecret = errors.New("withdrawal secret not set")

	// ErrInvalidWithdrawalSecret indicates the supplied withdrawal secret does not match.
	ErrInvalidWithdrawalSecret = errors.New("incorrect withdrawal secret")

	// ErrBelowMinimumWithdrawal indicates the requested amount is below the configured minimum.
	ErrBelowMinimumWithdrawal = errors.New("amount below minimum withdrawal")
)

// AppError carries a status code alongside a message and an optional cause.
// Repositories wrap low-level failures in AppError so callers can map them uniformly.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}
