package errors

import (
	"net/http"

	"walletauth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so errors
// produced by WithDetails still match their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"auth session not found or expired",
		"",
	)

	ErrSessionAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SESSION_ALREADY_EXISTS",
		"auth session already exists",
		"",
	)

	ErrInvalidStep = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STEP",
		"unknown wizard step",
		"",
	)

	ErrInvalidOperation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OPERATION",
		"unknown session operation",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"operation is not allowed in the current state",
		"",
	)

	ErrOperationInFlight = NewBaseError(
		http.StatusConflict,
		"OPERATION_IN_FLIGHT",
		"another operation of the same flow is in progress",
		"",
	)

	ErrAlreadyAuthenticated = NewBaseError(
		http.StatusConflict,
		"ALREADY_AUTHENTICATED",
		"session is already authenticated",
		"",
	)

	ErrProductMetadataImmutable = NewBaseError(
		http.StatusConflict,
		"PRODUCT_METADATA_IMMUTABLE",
		"product metadata cannot change during a session",
		"",
	)

	ErrUnificationFlowActive = NewBaseError(
		http.StatusConflict,
		"UNIFICATION_FLOW_ACTIVE",
		"an account unification flow is already active",
		"",
	)

	ErrInvariantViolation = NewBaseError(
		http.StatusConflict,
		"INVARIANT_VIOLATION",
		"update would leave the session in an invalid state",
		"",
	)

	// Magic link errors
	ErrMagicLinkInvalid = NewBaseError(
		http.StatusBadRequest,
		"MAGIC_LINK_INVALID",
		"magic link payload could not be decoded",
		"",
	)

	// Device verification errors
	ErrNoDeviceChallenge = NewBaseError(
		http.StatusConflict,
		"NO_DEVICE_CHALLENGE",
		"no device verification is pending",
		"",
	)

	// Mobile pairing errors
	ErrPairingNotStarted = NewBaseError(
		http.StatusConflict,
		"PAIRING_NOT_STARTED",
		"no mobile pairing channel is open",
		"",
	)

	ErrBridgeMessageInvalid = NewBaseError(
		http.StatusBadRequest,
		"BRIDGE_MESSAGE_INVALID",
		"mobile bridge message not recognized",
		"",
	)

	ErrExchangeTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"EXCHANGE_TOKEN_INVALID",
		"exchange token could not be verified",
		"",
	)

	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_GENERATION_FAILED",
		"failed to generate pairing QR code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
