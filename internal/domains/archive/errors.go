package archive

import (
	"errors"
	"fmt"
	"net/http"
)

// ArchiveError is the base error for the archive domain.
type ArchiveError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *ArchiveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewInvalidBuildRequest(detail string) *ArchiveError {
	return &ArchiveError{
		Code:    "INVALID_BUILD_REQUEST",
		Message: detail,
		Status:  http.StatusBadRequest,
	}
}

// NewArchiveIOError covers missing or unreadable upload files and any
// failure writing the staged archive.
func NewArchiveIOError(err error) *ArchiveError {
	return &ArchiveError{
		Code:    "ARCHIVE_IO_ERROR",
		Message: "Failed to build archive",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewArchiveNotFound signals a download after the expiry window.
func NewArchiveNotFound(name string) *ArchiveError {
	return &ArchiveError{
		Code:    "ARCHIVE_NOT_FOUND",
		Message: fmt.Sprintf("Archive not found or expired: %s", name),
		Status:  http.StatusNotFound,
	}
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var aErr *ArchiveError
	if errors.As(err, &aErr) {
		return aErr.Status, aErr.Message, aErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
