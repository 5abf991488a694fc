package auth

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError is the base error for the auth domain.
type AuthError struct {
	Code    string // unique error code, e.g. "AUTH_NOT_FOUND"
	Message string // human-readable message
	Status  int    // HTTP status the handler should respond with
	Err     error  // underlying error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewAuthNotFound() *AuthError {
	return &AuthError{
		Code:    "AUTH_NOT_FOUND",
		Message: "Account not found",
		Status:  http.StatusNotFound,
	}
}

func NewInvalidCredentials() *AuthError {
	return &AuthError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid username or password",
		Status:  http.StatusUnauthorized,
	}
}

func NewInvalidAuthID(id string) *AuthError {
	return &AuthError{
		Code:    "INVALID_AUTH_ID",
		Message: fmt.Sprintf("Invalid account ID: %s", id),
		Status:  http.StatusBadRequest,
	}
}

func NewAuthStoreError(op string, err error) *AuthError {
	return &AuthError{
		Code:    "AUTH_STORE_ERROR",
		Message: fmt.Sprintf("Account %s failed", op),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Status, authErr.Message, authErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
