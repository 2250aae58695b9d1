package visitor

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alexjohnson-dev/portfolio-backend/internal/database"
	"github.com/alexjohnson-dev/portfolio-backend/pkg/metrics"
)

const (
	collection    = "visitors"
	discriminator = "counter"
)

// Counter is the singleton visitor record.
type Counter struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Type      string             `bson:"type" json:"-"`
	Count     int64              `bson:"count" json:"count"`
	LastVisit time.Time          `bson:"last_visit" json:"last_visit"`
}

// Service owns the visitor counter.
type Service struct {
	store database.Store
}

func NewService(store database.Store) *Service {
	return &Service{store: store}
}

func filterCounter() bson.M {
	return bson.M{"type": discriminator}
}

// IncrementAndGet bumps the counter by one and returns the new value, creating
// the singleton with count=1 on first access. The read-then-write sequence is
// not compound-atomic: concurrent visits may collapse into one increment,
// which is acceptable for an approximate count.
func (s *Service) IncrementAndGet(ctx context.Context) (int64, error) {
	filter := filterCounter()
	now := time.Now().UTC()

	var cur Counter
	err := s.store.FindOne(ctx, collection, filter, &cur)
	if errors.Is(err, database.ErrNotFound) {
		c := Counter{Type: discriminator, Count: 1, LastVisit: now}
		if _, err := s.store.InsertOne(ctx, collection, c); err != nil {
			return 0, err
		}
		metrics.VisitorCount.Set(1)
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	next := cur.Count + 1
	if _, _, err := s.store.UpdateOne(ctx, collection, filter, bson.M{"count": next, "last_visit": now}); err != nil {
		return 0, err
	}
	metrics.VisitorCount.Set(float64(next))
	return next, nil
}
