package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/alexjohnson-dev/portfolio-backend/internal/config"
)

// ErrNotConfigured is returned when sender address or credential is missing;
// the gateway fails fast instead of attempting an SMTP dial.
var ErrNotConfigured = errors.New("mailer: sender email or password not configured")

// Mailer sends contact notifications to a single operator address over
// authenticated SMTP. One attempt per call, no retry, no queue.
type Mailer struct {
	host     string
	port     int
	sender   string
	password string
	to       string
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		sender:   cfg.Sender,
		password: cfg.Password,
		to:       cfg.NotifyTo,
	}
}

// Configured reports whether both secrets are present.
func (m *Mailer) Configured() bool {
	return m.sender != "" && m.password != ""
}

// Notify formats and sends a plain-text notification for one contact
// submission. Transport and auth failures come back as ordinary errors.
func (m *Mailer) Notify(ctx context.Context, name, email, message string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("New contact form message from %s", name))
	msg.SetBody("text/plain", formatBody(name, email, message, time.Now().UTC()))

	d := gomail.NewDialer(m.host, m.port, m.sender, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

func formatBody(name, email, message string, at time.Time) string {
	return fmt.Sprintf("You received a new message via the portfolio contact form.\n\n"+
		"From: %s <%s>\nReceived: %s\n\n%s\n",
		name, email, at.Format(time.RFC1123), message)
}
