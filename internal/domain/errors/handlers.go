package errors

import (
	"contacts/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Kind    Kind   // Error classification
	Code    string // Business error code, e.g., "CONTACT_NOT_FOUND"
	Message string // User-friendly error message
	Details string // Detailed error information (optional)
}

// ToErrorInfo converts any error into ErrorInfo for display and logging.
// Errors outside the AppError family are reported as internal.
func ToErrorInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	if validationErr, ok := errors.AsType[*ValidationError](err); ok {
		return &ErrorInfo{
			Kind:    KindValidation,
			Code:    ErrValidationFailed.ErrorCode(),
			Message: validationErr.Reason,
			Details: validationErr.Field + "=" + validationErr.Value,
		}
	}

	if notFoundErr, ok := errors.AsType[*NotFoundError](err); ok {
		return &ErrorInfo{
			Kind:    KindNotFound,
			Code:    notFoundErr.Subject.ErrorCode(),
			Message: notFoundErr.Error(),
			Details: notFoundErr.Subject.Details(),
		}
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		message := appErr.Message()
		if appErr.Kind() == KindIO {
			message = err.Error()
		}

		return &ErrorInfo{
			Kind:    appErr.Kind(),
			Code:    appErr.ErrorCode(),
			Message: message,
			Details: appErr.Details(),
		}
	}

	return &ErrorInfo{
		Kind:    KindInternal,
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	}
}

// UserMessage renders err as the single line shown at the prompt.
func UserMessage(err error) string {
	info := ToErrorInfo(err)
	if info == nil {
		return ""
	}

	return info.Message
}
