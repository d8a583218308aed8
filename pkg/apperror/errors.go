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

// ---- Ledger Business Logic (LGR) ----

// ErrUnauthorized signals a failed role or ownership check.
func ErrUnauthorized() *AppError {
	return New("LGR_001", "Caller is not authorized for this operation", http.StatusForbidden)
}

// ErrInvalidAccount signals an account id outside [1, totalAccounts].
func ErrInvalidAccount() *AppError {
	return New("LGR_002", "Account does not exist", http.StatusNotFound)
}

// ErrInactiveAccount signals an operation that requires an active account.
func ErrInactiveAccount() *AppError {
	return New("LGR_003", "Account is not active", http.StatusConflict)
}

// ErrAuditNotFound signals an unknown audit id.
func ErrAuditNotFound() *AppError {
	return New("LGR_004", "Audit record not found", http.StatusNotFound)
}

// ErrAuditAlreadyCompleted signals a second completion attempt on the same audit.
func ErrAuditAlreadyCompleted() *AppError {
	return New("LGR_005", "Audit has already been completed", http.StatusConflict)
}

// ErrInvalidAuditor signals a nil or redundant auditor transfer target.
func ErrInvalidAuditor() *AppError {
	return New("LGR_006", "Invalid auditor transfer target", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 malformed-input error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// Code extracts the AppError code from err, or "" if err is not an AppError.
func Code(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ""
}
