package reviewer

import (
	"errors"
	"fmt"
	"net/http"
)

// ReviewerError is the base error for the reviewer domain.
type ReviewerError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *ReviewerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ReviewerError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewReviewerNotFound() *ReviewerError {
	return &ReviewerError{
		Code:    "REVIEWER_NOT_FOUND",
		Message: "Reviewer not found",
		Status:  http.StatusNotFound,
	}
}

func NewInvalidReviewerID(id string) *ReviewerError {
	return &ReviewerError{
		Code:    "INVALID_REVIEWER_ID",
		Message: fmt.Sprintf("Invalid reviewer ID: %s", id),
		Status:  http.StatusBadRequest,
	}
}

func NewReviewerEmailExists(email string) *ReviewerError {
	return &ReviewerError{
		Code:    "REVIEWER_EMAIL_EXISTS",
		Message: fmt.Sprintf("A reviewer with email '%s' already exists", email),
		Status:  http.StatusConflict,
	}
}

// NewAccountMissing reports the formalized precondition: reviewer
// registration requires an existing Auth record for the email.
func NewAccountMissing(email string) *ReviewerError {
	return &ReviewerError{
		Code:    "REVIEWER_ACCOUNT_MISSING",
		Message: fmt.Sprintf("No account exists for email '%s'; reviewers must have an account first", email),
		Status:  http.StatusNotFound,
	}
}

func NewReviewerStoreError(op string, err error) *ReviewerError {
	return &ReviewerError{
		Code:    "REVIEWER_STORE_ERROR",
		Message: fmt.Sprintf("Reviewer %s failed", op),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var rErr *ReviewerError
	if errors.As(err, &rErr) {
		return rErr.Status, rErr.Message, rErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
