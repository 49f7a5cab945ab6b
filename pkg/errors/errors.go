package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// User input errors - detected before any network call
	ErrorTypeNoInput
	ErrorTypeInputTooShort

	// Domain errors
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to external providers
	ErrorTypeTransport
	ErrorTypeResponseValidation
	ErrorTypeTranslation

	// System/Configuration Errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeNoInput:
		return "NO_INPUT_ERROR"
	case ErrorTypeInputTooShort:
		return "INPUT_TOO_SHORT_ERROR"
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeResponseValidation:
		return "RESPONSE_VALIDATION_ERROR"
	case ErrorTypeTranslation:
		return "TRANSLATION_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout the code base
const (
	NoInputError            = ErrorTypeNoInput
	InputTooShortError      = ErrorTypeInputTooShort
	ValidationError         = ErrorTypeValidation
	NotFoundError           = ErrorTypeNotFound
	TransportError          = ErrorTypeTransport
	ResponseValidationError = ErrorTypeResponseValidation
	TranslationError        = ErrorTypeTranslation
	ConfigurationError      = ErrorTypeConfiguration
)

// AppError is the single error shape crossing package boundaries.
// StatusCode is set for transport failures that got an HTTP response,
// Path for response validation failures.
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	StatusCode int
	Path       string
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), msg)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Input Error Constructors
func NewNoInputError(message string) *AppError {
	return New(NoInputError, message)
}

func NewInputTooShortError(message string) *AppError {
	return New(InputTooShortError, message)
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure Error Constructors
func NewTransportError(message string, statusCode int, cause error) *AppError {
	return &AppError{
		Type:       TransportError,
		Message:    message,
		Cause:      cause,
		StatusCode: statusCode,
	}
}

func NewResponseValidationError(path, message string, cause error) *AppError {
	return &AppError{
		Type:    ResponseValidationError,
		Message: message,
		Cause:   cause,
		Path:    path,
	}
}

func NewTranslationError(message string, cause error) *AppError {
	return Wrap(TranslationError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsInputError(err error) bool {
	t := TypeOf(err)
	return t == NoInputError || t == InputTooShortError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsTransportError(err error) bool {
	return TypeOf(err) == TransportError
}

func IsResponseValidationError(err error) bool {
	return TypeOf(err) == ResponseValidationError
}

func IsTranslationError(err error) bool {
	return TypeOf(err) == TranslationError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
