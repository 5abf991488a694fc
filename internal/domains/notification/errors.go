package notification

import (
	"errors"
	"fmt"
	"net/http"
)

// NotificationError is the base error for the notification domain.
type NotificationError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewInvalidMailRequest(detail string) *NotificationError {
	return &NotificationError{
		Code:    "INVALID_MAIL_REQUEST",
		Message: detail,
		Status:  http.StatusBadRequest,
	}
}

// NewMailTransportError signals the upstream SMTP relay rejected or
// dropped the message.
func NewMailTransportError(err error) *NotificationError {
	return &NotificationError{
		Code:    "MAIL_TRANSPORT_ERROR",
		Message: "Mail transport failed",
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var nErr *NotificationError
	if errors.As(err, &nErr) {
		return nErr.Status, nErr.Message, nErr.Code
	}
	return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
}
