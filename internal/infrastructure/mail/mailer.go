// Package mail is the outbound notification sink. Delivery is best-effort:
// when SMTP is unconfigured the message is logged and reported as sent, and
// no triggering operation ever fails because delivery failed.
package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/havenbridge/homecare-api/internal/core/ports"
)

// Config captures the SMTP settings for outbound notifications. An empty
// Host or Username leaves the mailer in log-only mode.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements ports.MailSender.
type SMTPMailer struct {
	cfg    Config
	client *gomail.Client
	logger zerolog.Logger
}

// NewSMTPMailer builds the mailer. A client is only constructed when SMTP is
// fully configured; otherwise Send logs instead of sending.
func NewSMTPMailer(cfg Config, logger zerolog.Logger) (*SMTPMailer, error) {
	m := &SMTPMailer{cfg: cfg, logger: logger}
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		logger.Info().Msg("smtp not configured, notifications will be logged only")
		return m, nil
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	m.client = client
	return m, nil
}

// Send renders the template for n and attempts delivery.
func (m *SMTPMailer) Send(ctx context.Context, n ports.Notification) error {
	subject, body := render(n)

	if m.client == nil {
		m.logger.Info().
			Str("to", n.To).
			Str("kind", string(n.Kind)).
			Str("subject", subject).
			Msg("smtp not configured, notification logged instead of sent")
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(n.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info().Str("to", n.To).Str("kind", string(n.Kind)).Msg("notification sent")
	return nil
}
