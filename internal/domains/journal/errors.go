package journal

import (
	"errors"
	"fmt"
	"net/http"
)

// JournalError is the base error for the journal domain.
type JournalError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *JournalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *JournalError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewJournalNotFound() *JournalError {
	return &JournalError{
		Code:    "JOURNAL_NOT_FOUND",
		Message: "Journal not found",
		Status:  http.StatusNotFound,
	}
}

func NewInvalidJournalID(id string) *JournalError {
	return &JournalError{
		Code:    "INVALID_JOURNAL_ID",
		Message: fmt.Sprintf("Invalid journal ID: %s", id),
		Status:  http.StatusBadRequest,
	}
}

func NewEditorEmailExists(email string) *JournalError {
	return &JournalError{
		Code:    "EDITOR_EMAIL_EXISTS",
		Message: fmt.Sprintf("An account with email '%s' already exists", email),
		Status:  http.StatusConflict,
	}
}

func NewEditorPhoneExists(phone string) *JournalError {
	return &JournalError{
		Code:    "EDITOR_PHONE_EXISTS",
		Message: fmt.Sprintf("An account with phone number '%s' already exists", phone),
		Status:  http.StatusConflict,
	}
}

func NewNoEditorAssigned() *JournalError {
	return &JournalError{
		Code:    "NO_EDITOR_ASSIGNED",
		Message: "Journal has no editor assigned",
		Status:  http.StatusNotFound,
	}
}

func NewJournalStoreError(op string, err error) *JournalError {
	return &JournalError{
		Code:    "JOURNAL_STORE_ERROR",
		Message: fmt.Sprintf("Journal %s failed", op),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func NewCredentialGenerationError(err error) *JournalError {
	return &JournalError{
		Code:    "CREDENTIAL_GENERATION_ERROR",
		Message: "Failed to generate editor credentials",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var jErr *JournalError
	if errors.As(err, &jErr) {
		return jErr.Status, jErr.Message, jErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
