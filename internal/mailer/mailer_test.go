package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexjohnson-dev/portfolio-backend/internal/config"
)

func TestNotifyFailsFastWithoutCredentials(t *testing.T) {
	m := New(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587})
	if m.Configured() {
		t.Fatal("mailer without credentials should report unconfigured")
	}
	err := m.Notify(context.Background(), "Jane", "jane@x.com", "Hello")
	if err != ErrNotConfigured {
		t.Fatalf("Notify() = %v, want ErrNotConfigured", err)
	}
}

func TestNotifyRespectsCanceledContext(t *testing.T) {
	m := New(config.MailConfig{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		Sender:   "sender@example.com",
		Password: "secret",
		NotifyTo: "ops@example.com",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Notify(ctx, "Jane", "jane@x.com", "Hello"); err != context.Canceled {
		t.Fatalf("Notify() = %v, want context.Canceled", err)
	}
}

func TestFormatBody(t *testing.T) {
	at := time.Date(2025, time.March, 1, 12, 30, 0, 0, time.UTC)
	body := formatBody("Jane", "jane@x.com", "Hello there", at)
	for _, want := range []string{"Jane", "jane@x.com", "Hello there", "Sat, 01 Mar 2025 12:30:00 UTC"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}
