package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestToErrorInfo(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    Kind
		code    string
		message string
	}{
		{
			name:    "Validation",
			err:     NewValidationError("phone", "12a", "Please enter correct phone number"),
			kind:    KindValidation,
			code:    "VALIDATION_FAILED",
			message: "Please enter correct phone number",
		},
		{
			name:    "Not found",
			err:     NewNotFoundError(ErrContactNotFound, "Zed", "Please input correct name"),
			kind:    KindNotFound,
			code:    "CONTACT_NOT_FOUND",
			message: "Please input correct name",
		},
		{
			name:    "Not found without message",
			err:     NewNotFoundError(ErrPhoneNotFound, "999", ""),
			kind:    KindNotFound,
			code:    "PHONE_NOT_FOUND",
			message: "phone number not found: 999",
		},
		{
			name:    "Prompt error",
			err:     pkgerrors.WithStack(ErrInvalidIndex),
			kind:    KindInput,
			code:    "INVALID_INDEX",
			message: "Sorry, reading from invalid index",
		},
		{
			name:    "Storage",
			err:     NewStorageError(pkgerrors.New("disk full"), "write book.csv"),
			kind:    KindIO,
			code:    "STORAGE_FAILED",
			message: "storage operation failed: disk full",
		},
		{
			name:    "Unclassified",
			err:     pkgerrors.New("boom"),
			kind:    KindInternal,
			code:    "INTERNAL_ERROR",
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ToErrorInfo(tt.err)
			assert.Equal(t, tt.kind, info.Kind)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.message, info.Message)
			assert.Equal(t, tt.message, UserMessage(tt.err))
		})
	}

	assert.Nil(t, ToErrorInfo(nil))
	assert.Empty(t, UserMessage(nil))
}

func TestNotFoundError_CarriesKeyAsDetails(t *testing.T) {
	err := NewNotFoundError(ErrContactNotFound, "Zed", "Please input correct name")

	assert.Equal(t, "Zed", err.Subject.Details())
	assert.Equal(t, "Zed", ToErrorInfo(err).Details)
	assert.True(t, pkgerrors.Is(err, ErrContactNotFound))
	assert.Empty(t, ErrContactNotFound.Details())
}

func TestWrapMessage_KeepsUserMessage(t *testing.T) {
	err := ErrInvalidIndex.WrapMessage("phone add expects 2 arguments, got 1")

	assert.Equal(t, "phone add expects 2 arguments, got 1: Sorry, reading from invalid index", err.Error())
	assert.True(t, pkgerrors.Is(err, ErrInvalidIndex))
	assert.Equal(t, "Sorry, reading from invalid index", UserMessage(err))
}
