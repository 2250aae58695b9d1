package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// Store is the thin document-store surface used by all services. Each call is
// an independent single-document operation; the store guarantees atomicity per
// document only. Filters are flat equality matches (discriminator lookups).
type Store interface {
	// FindOne decodes the first matching document into out.
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error
	// UpdateOne applies a $set patch and reports how many documents matched
	// and how many were actually modified (a no-op set matches but does not
	// modify).
	UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) (matched, modified int64, err error)
	// Push appends value to an array field of the matching document.
	Push(ctx context.Context, collection string, filter bson.M, field string, value interface{}) (modified int64, err error)
	// InsertOne stores a new document and returns its identifier as text.
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
