package errors

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Provisioning errors
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrWeakPassword       = errors.New("password too weak")
	ErrNetworkUnavailable = errors.New("network unavailable")
)

// Flow errors
var (
	ErrPassphraseMismatch = errors.New("passphrase does not match")
	ErrTooManyAttempts    = errors.New("too many failed attempts")
	ErrFlowNotAtStation   = errors.New("operation not valid at current station")
	ErrRequestInFlight    = errors.New("request already in flight")
	ErrStaleResponse      = errors.New("stale response discarded")
)

// Navigation errors
var (
	ErrMissingParam      = errors.New("missing required navigation parameter")
	ErrUnreachableScreen = errors.New("destination not reachable in current state")
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotAMember        = errors.New("user is not a member")
)

// Error codes surfaced to screens
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeNetworkUnavailable = "NETWORK_UNAVAILABLE"
	CodePassphraseMismatch = "PASSPHRASE_MISMATCH"
	CodeMissingParam       = "MISSING_PARAM"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError carries a machine-readable code alongside the user-visible message.
// Screens render Message and branch on Code.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, ErrNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(CodeConflict, message, ErrAlreadyExists)
}

func BadInput(message string) *AppError {
	return NewAppError(CodeInvalidInput, message, ErrInvalidInput)
}

func Forbidden(message string) *AppError {
	return NewAppError(CodeForbidden, message, ErrForbidden)
}

func InvalidCredentials(message string) *AppError {
	return NewAppError(CodeInvalidCredentials, message, ErrInvalidCredentials)
}

func MissingParam(message string) *AppError {
	return NewAppError(CodeMissingParam, message, ErrMissingParam)
}

func InternalError(err error) *AppError {
	return NewAppError(CodeInternalError, "internal error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
		Err:     err,
	}
}
