package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidCredentials = 4001
	CodeInvalidTransaction = 4002
	CodeAuthentication     = 4010
	CodeUserNotFound       = 4040
	CodeUserExists         = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrUserExists is returned when registering a username that is already taken
	ErrUserExists = errors.New("user already exists")

	// ErrAuthenticationFailure is returned when a username/password pair does not match
	ErrAuthenticationFailure = errors.New("invalid username or password")

	// ErrUserNotFound is returned when the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUsername is returned when the username is empty or too long
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned when the password is empty or exceeds the hasher limit
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidTransactionType is returned when the type is neither Income nor Expense
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDate is returned when the transaction date is missing or malformed
	ErrInvalidDate = errors.New("invalid transaction date")

	// ErrStorageUnavailable is returned when the persistence substrate cannot be opened, read or written
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUserExists):
		return CodeUserExists
	case errors.Is(err, ErrAuthenticationFailure):
		return CodeAuthentication
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidUsername),
		errors.Is(err, ErrInvalidPassword):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidTransactionType),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidRequest):
		return CodeInvalidTransaction
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// StorageError describes a failed operation against the storage substrate
type StorageError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s on %s: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports every StorageError as ErrStorageUnavailable
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"entity":     e.Entity,
		"error_code": CodeStorageUnavailable,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewStorageError creates a new storage error for the given operation and entity
func NewStorageError(operation, entity string, err error) error {
	return &StorageError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// TransactionError represents a rejected ledger entry
type TransactionError struct {
	Username string
	Type     string
	Amount   string
	Reason   string
	Err      error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction rejected for user %q (type: %s, amount: %s): %s - %v",
		e.Username, e.Type, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transaction_error",
		"username":   e.Username,
		"type":       e.Type,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(username, txType, amount, reason string, err error) error {
	return &TransactionError{
		Username: username,
		Type:     txType,
		Amount:   amount,
		Reason:   reason,
		Err:      err,
	}
}

// IsUserExistsError checks if the error is a duplicate registration
func IsUserExistsError(err error) bool {
	return errors.Is(err, ErrUserExists)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsStorageUnavailableError checks if the error comes from the storage substrate
func IsStorageUnavailableError(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsValidationError checks if the error is caused by bad caller input
func IsValidationError(err error) bool {
	code := ErrorCode(err)
	return code == CodeInvalidCredentials || code == CodeInvalidTransaction
}
