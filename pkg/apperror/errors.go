package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Checkout (CHK) ----

func ErrMissingMerchandiseID() *AppError {
	return New("CHK_001", "Missing merchandise ID", http.StatusBadRequest)
}

func ErrInvalidQuantity() *AppError {
	return New("CHK_002", "Quantity must be a positive integer", http.StatusBadRequest)
}

func ErrCheckoutRejected(reason string) *AppError {
	return New("CHK_003", fmt.Sprintf("Checkout rejected: %s", reason), http.StatusBadGateway)
}

func ErrCheckoutTimeout() *AppError {
	return New("CHK_004", "Checkout did not complete in time", http.StatusGatewayTimeout)
}

// ---- Tracking (TRK) ----

func ErrInvalidTrackingPayload(reason string) *AppError {
	return New("TRK_001", fmt.Sprintf("Invalid tracking payload: %s", reason), http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrCommerceUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Commerce backend unavailable", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ---- Request shape (REQ) ----

// Validation returns a request-validation error for bodies that fail binding,
// as opposed to domain-level checkout or tracking failures.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
