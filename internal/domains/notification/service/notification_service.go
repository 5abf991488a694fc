package service

import (
	"context"

	"journal-backend/internal/domains/notification"
	"journal-backend/internal/infrastructure/email"
)

type notificationService struct {
	mailer email.Mailer
}

func NewNotificationService(mailer email.Mailer) notification.Service {
	return &notificationService{
		mailer: mailer,
	}
}

func (s *notificationService) SendMail(ctx context.Context, req notification.SendMailRequest) (*email.SendResult, error) {
	if err := req.Validate(); err != nil {
		return nil, notification.NewInvalidMailRequest(err.Error())
	}

	result, err := s.mailer.Send(ctx, email.Message{
		FromLabel: req.FromLabel,
		To:        req.To,
		Subject:   req.Subject,
		HTMLBody:  req.HTMLBody,
	})
	if err != nil {
		return nil, notification.NewMailTransportError(err)
	}

	return result, nil
}
