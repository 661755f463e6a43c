package errors

import (
	"contacts/internal/errors"
)

// Kind classifies an application error for the prompt boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindIO
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIO:
		return "io"
	case KindInput:
		return "input"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so values derived
// through WithDetails still match the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"invalid field value",
		"",
	)

	// Lookup-related errors
	ErrContactNotFound = NewBaseError(
		KindNotFound,
		"CONTACT_NOT_FOUND",
		"contact not found",
		"",
	)

	ErrPhoneNotFound = NewBaseError(
		KindNotFound,
		"PHONE_NOT_FOUND",
		"phone number not found",
		"",
	)

	ErrBirthdayNotSet = NewBaseError(
		KindNotFound,
		"BIRTHDAY_NOT_SET",
		"contact has no birthday",
		"",
	)

	// Storage-related errors
	ErrStorageFailed = NewBaseError(
		KindIO,
		"STORAGE_FAILED",
		"storage operation failed",
		"",
	)

	// Prompt-related errors
	ErrInvalidIndex = NewBaseError(
		KindInput,
		"INVALID_INDEX",
		"Sorry, reading from invalid index",
		"",
	)

	ErrUnknownCommand = NewBaseError(
		KindInput,
		"UNKNOWN_COMMAND",
		"Sorry, unknown command",
		"",
	)

	ErrInvalidAnswer = NewBaseError(
		KindInput,
		"INVALID_ANSWER",
		"Please enter Y or N",
		"",
	)
)

// ValidationError reports a field value rejected by its validation rule.
type ValidationError struct {
	Field  string // Field variant, e.g. "name", "phone".
	Value  string // The rejected raw value.
	Reason string // User-facing explanation.
}

// NewValidationError creates a validation error for the given field and value
func NewValidationError(field, value, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NotFoundError reports an operation referencing a missing contact or phone.
type NotFoundError struct {
	Subject *BaseError // Predefined not-found error carrying Key as details.
	Key     string     // The name or phone that was looked up.
	message string
}

// NewNotFoundError creates a not-found error with a user-facing message
func NewNotFoundError(subject *BaseError, key, message string) *NotFoundError {
	return &NotFoundError{
		Subject: subject.WithDetails(key),
		Key:     key,
		message: message,
	}
}

func (e *NotFoundError) Error() string {
	if e.message == "" {
		return e.Subject.Message() + ": " + e.Key
	}

	return e.message
}

func (e *NotFoundError) Unwrap() error {
	return e.Subject
}

// StorageError represents a storage read or write failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying cause
func (e *StorageError) Unwrap() error {
	return e.err
}

// Is lets errors.Is(err, ErrStorageFailed) match any storage error
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailed
}

// Kind returns the error classification
func (e *StorageError) Kind() Kind {
	return KindIO
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return ErrStorageFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return ErrStorageFailed.Message()
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
