package email

import (
	"context"
	"fmt"
	"net/smtp"

	"journal-backend/internal/config"
	"journal-backend/pkg/logger"
)

// Mailer dispatches a single message through the configured transport.
// One attempt per call; the caller decides what a failure means.
type Mailer interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

// Message is one outbound email. Body is HTML.
type Message struct {
	FromLabel string // display label, e.g. "Journal Hub Editorial"
	To        string
	Subject   string
	HTMLBody  string
}

// SendResult carries transport metadata back to the handler envelope.
type SendResult struct {
	Accepted  string `json:"accepted"`
	Transport string `json:"transport"`
}

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer builds a Mailer over a fixed service account.
func NewSMTPMailer(cfg *config.SMTPConfig) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpMailer{
		addr: cfg.Host + ":" + cfg.Port,
		from: cfg.From,
		auth: auth,
	}
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) (*SendResult, error) {
	from := m.from
	if msg.FromLabel != "" {
		from = fmt.Sprintf("%s <%s>", msg.FromLabel, m.from)
	}

	raw := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from, msg.To, msg.Subject, msg.HTMLBody))

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, raw); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        msg.To,
			"smtp_addr": m.addr,
		})
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	return &SendResult{Accepted: msg.To, Transport: m.addr}, nil
}
