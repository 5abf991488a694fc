package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domains/notification"
	"journal-backend/internal/infrastructure/email"
)

type fakeMailer struct {
	sent []email.Message
	fail error
}

func (f *fakeMailer) Send(ctx context.Context, msg email.Message) (*email.SendResult, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.sent = append(f.sent, msg)
	return &email.SendResult{Accepted: msg.To, Transport: "smtp.test:25"}, nil
}

func TestSendMail_DispatchesOnce(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(mailer)

	result, err := svc.SendMail(context.Background(), notification.SendMailRequest{
		FromLabel: "Editorial Office",
		To:        "dana@uni.edu",
		Subject:   "Decision on your submission",
		HTMLBody:  "<p>Accepted.</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "dana@uni.edu", result.Accepted)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Editorial Office", mailer.sent[0].FromLabel)
}

func TestSendMail_TransportFailureIsBadGateway(t *testing.T) {
	svc := NewNotificationService(&fakeMailer{fail: errors.New("relay down")})

	_, err := svc.SendMail(context.Background(), notification.SendMailRequest{
		To:       "dana@uni.edu",
		Subject:  "Decision",
		HTMLBody: "<p>x</p>",
	})
	require.Error(t, err)

	status, _, code := notification.GetErrorResponse(err)
	assert.Equal(t, 502, status)
	assert.Equal(t, "MAIL_TRANSPORT_ERROR", code)
}

func TestSendMail_ValidationFailures(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(mailer)

	tests := []struct {
		name string
		req  notification.SendMailRequest
	}{
		{"missing recipient", notification.SendMailRequest{Subject: "s", HTMLBody: "b"}},
		{"bad recipient", notification.SendMailRequest{To: "not-an-address", Subject: "s", HTMLBody: "b"}},
		{"missing subject", notification.SendMailRequest{To: "a@b.c", HTMLBody: "b"}},
		{"missing body", notification.SendMailRequest{To: "a@b.c", Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SendMail(context.Background(), tt.req)
			require.Error(t, err)

			status, _, _ := notification.GetErrorResponse(err)
			assert.Equal(t, 400, status)
			// One attempt per valid call only; invalid input never
			// reaches the transport.
			assert.Empty(t, mailer.sent)
		})
	}
}
