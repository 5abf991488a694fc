package notification

import (
	"context"

	"journal-backend/internal/infrastructure/email"
)

// Service is the business logic contract for the notification domain.
type Service interface {
	// SendMail dispatches one message synchronously. One attempt, no
	// retry; a transport failure surfaces to the caller.
	SendMail(ctx context.Context, req SendMailRequest) (*email.SendResult, error)
}
