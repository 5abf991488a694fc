package article

import (
	"errors"
	"fmt"
	"net/http"
)

// ArticleError is the base error for the article domain.
type ArticleError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *ArticleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewArticleNotFound() *ArticleError {
	return &ArticleError{
		Code:    "ARTICLE_NOT_FOUND",
		Message: "Article not found",
		Status:  http.StatusNotFound,
	}
}

// NewNoArticlesFound is the empty-result signal for list endpoints.
func NewNoArticlesFound() *ArticleError {
	return &ArticleError{
		Code:    "NO_ARTICLES_FOUND",
		Message: "No articles found",
		Status:  http.StatusNotFound,
	}
}

func NewInvalidArticleID(id string) *ArticleError {
	return &ArticleError{
		Code:    "INVALID_ARTICLE_ID",
		Message: fmt.Sprintf("Invalid article ID: %s", id),
		Status:  http.StatusBadRequest,
	}
}

func NewInvalidSubmission(detail string) *ArticleError {
	return &ArticleError{
		Code:    "INVALID_SUBMISSION",
		Message: detail,
		Status:  http.StatusBadRequest,
	}
}

// NewReviewEntryNotFound replaces the silent no-op on a review update
// whose email matches no reviewer entry.
func NewReviewEntryNotFound(email string) *ArticleError {
	return &ArticleError{
		Code:    "REVIEW_ENTRY_NOT_FOUND",
		Message: fmt.Sprintf("No reviewer entry matches email '%s'", email),
		Status:  http.StatusNotFound,
	}
}

// NewAssignedReviewerNotFound signals an assignment referencing a
// reviewer id absent from the roster.
func NewAssignedReviewerNotFound(id string) *ArticleError {
	return &ArticleError{
		Code:    "REVIEWER_NOT_FOUND",
		Message: fmt.Sprintf("Reviewer not found: %s", id),
		Status:  http.StatusNotFound,
	}
}

func NewArticleStoreError(op string, err error) *ArticleError {
	return &ArticleError{
		Code:    "ARTICLE_STORE_ERROR",
		Message: fmt.Sprintf("Article %s failed", op),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var aErr *ArticleError
	if errors.As(err, &aErr) {
		return aErr.Status, aErr.Message, aErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
