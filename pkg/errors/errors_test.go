package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return NewTransportError("geocoding request failed", 0, cause)
			},
			expected: "TRANSPORT_ERROR: geocoding request failed (caused by: connection refused)",
		},
		{
			name: "ErrorWithPath",
			setup: func() *AppError {
				return NewResponseValidationError("main.temp", "required field missing", nil)
			},
			expected: "RESPONSE_VALIDATION_ERROR: required field missing at main.temp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := NewTranslationError("translator unavailable", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, New(NotFoundError, "resource not found").Unwrap())
}

func TestNewTransportError_KeepsStatusCode(t *testing.T) {
	err := NewTransportError("provider returned status 503", 503, nil)

	assert.Equal(t, TransportError, err.Type)
	assert.Equal(t, 503, err.StatusCode)
	assert.Empty(t, err.Path)
}

func TestTypeHelpers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolve city: %w", NewNotFoundError("city not found"))

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsTransportError(wrapped))
	assert.Equal(t, NotFoundError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(stderrors.New("plain")))
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(NewNoInputError("empty")))
	assert.True(t, IsInputError(NewInputTooShortError("short")))
	assert.False(t, IsInputError(NewValidationError("bad argument")))
}

func TestUserCategoryOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected UserCategory
	}{
		{"Nil", nil, CategoryNone},
		{"NotFound", NewNotFoundError("no city"), CategoryNotFound},
		{"TooShort", NewInputTooShortError("ab"), CategoryInputTooShort},
		{"NoInput", NewNoInputError("empty"), CategoryNoInput},
		{"Transport", NewTransportError("timeout", 0, nil), CategoryFailure},
		{"ResponseValidation", NewResponseValidationError("list", "bad", nil), CategoryFailure},
		{"Plain", stderrors.New("boom"), CategoryFailure},
		{"WrappedNotFound", fmt.Errorf("get report: %w", NewNotFoundError("x")), CategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserCategoryOf(tt.err))
		})
	}
}

func TestUserCategory_Message(t *testing.T) {
	assert.Equal(t, "City not found", CategoryNotFound.Message())
	assert.Equal(t, "Please enter a city name", CategoryNoInput.Message())
	assert.Empty(t, CategoryNone.Message())
}
