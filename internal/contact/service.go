package contact

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alexjohnson-dev/portfolio-backend/internal/database"
	"github.com/alexjohnson-dev/portfolio-backend/pkg/logger"
	"github.com/alexjohnson-dev/portfolio-backend/pkg/metrics"
)

const collection = "messages"

// Message is one contact-form submission. Messages are append-only: never
// updated or deleted by this service.
type Message struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Notifier forwards a stored submission to the operator. Implementations are
// best-effort; the contact service never lets their errors escape.
type Notifier interface {
	Notify(ctx context.Context, name, email, message string) error
}

// Service persists contact messages and triggers notifications.
type Service struct {
	store    database.Store
	notifier Notifier
}

func NewService(store database.Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Submit stores the message and then attempts one notification. The stored
// message survives regardless of the notification outcome; the bool result
// reports whether the email went out.
func (s *Service) Submit(ctx context.Context, name, email, message string) (string, bool, error) {
	msg := Message{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.store.InsertOne(ctx, collection, msg)
	if err != nil {
		return "", false, err
	}
	metrics.ContactMessages.Inc()

	sent := false
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, name, email, message); err != nil {
			logger.Warnf("contact notification failed for message %s: %v", id, err)
			metrics.NotificationsFailed.Inc()
		} else {
			sent = true
			metrics.NotificationsSent.Inc()
		}
	}
	return id, sent, nil
}
