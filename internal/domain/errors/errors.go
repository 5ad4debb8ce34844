package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmailNotVerified   = errors.New("email not verified")

	// Identity lifecycle
	ErrWrongProvider   = errors.New("account registered with a different sign-in method")
	ErrAccountRemoved  = errors.New("account removed")
	ErrNoProfile       = errors.New("no profile for this account")
	ErrAccountPending  = errors.New("account pending approval")
	ErrAccountRejected = errors.New("account not approved")

	// Registration engine
	ErrEventFull          = errors.New("event is full")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrPaymentInfoInvalid = errors.New("payment information invalid")
)

// AppError represents an application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
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
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// Status maps a domain error to the HTTP status and user-facing message
// the API surfaces. Unknown errors collapse to a generic 500 so raw
// driver messages never reach clients.
func Status(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Message
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict, "Resource already exists"
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized, "Session expired, please sign in again"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "You do not have permission to do that"
	case errors.Is(err, ErrEmailNotVerified):
		return http.StatusForbidden, "Please verify your email address first"
	case errors.Is(err, ErrWrongProvider):
		return http.StatusConflict, "This email is registered with a different sign-in method"
	case errors.Is(err, ErrAccountRemoved):
		return http.StatusGone, "Your account has been removed. You may request re-approval"
	case errors.Is(err, ErrNoProfile):
		return http.StatusNotFound, "No account found. Please register first"
	case errors.Is(err, ErrAccountPending):
		return http.StatusForbidden, "Your account is awaiting admin approval"
	case errors.Is(err, ErrAccountRejected):
		return http.StatusForbidden, "Your account has not been approved"
	case errors.Is(err, ErrEventFull):
		return http.StatusConflict, "Event is full"
	case errors.Is(err, ErrAlreadyRegistered):
		return http.StatusConflict, "You are already registered for this event"
	case errors.Is(err, ErrRegistrationClosed):
		return http.StatusConflict, "Registration for this event is closed"
	case errors.Is(err, ErrPaymentInfoInvalid):
		return http.StatusBadRequest, "Payment information is missing or invalid"
	}
	return http.StatusInternalServerError, "Something went wrong, please try again"
}
