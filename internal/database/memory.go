package database

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by unit tests. Documents are kept as
// bson maps after a marshal round-trip so that types (timestamps, arrays)
// behave the same as documents decoded from Mongo.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

// toDoc normalizes an arbitrary value into a bson map.
func toDoc(v interface{}) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) find(collection string, filter bson.M) (bson.M, bool) {
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return doc, true
		}
	}
	return nil, false
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.find(collection, filter)
	if !ok {
		return ErrNotFound
	}
	b, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(b, out)
}

func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) (int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.find(collection, filter)
	if !ok {
		return 0, 0, nil
	}
	patch, err := toDoc(set)
	if err != nil {
		return 0, 0, err
	}
	var modified int64
	for k, v := range patch {
		if !reflect.DeepEqual(doc[k], v) {
			doc[k] = v
			modified = 1
		}
	}
	return 1, modified, nil
}

func (s *MemoryStore) Push(ctx context.Context, collection string, filter bson.M, field string, value interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.find(collection, filter)
	if !ok {
		return 0, nil
	}
	elem, err := toDoc(value)
	if err != nil {
		return 0, err
	}
	arr, _ := doc[field].(bson.A)
	doc[field] = append(arr, elem)
	return 1, nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	m, err := toDoc(doc)
	if err != nil {
		return "", err
	}
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], m)
	return id.Hex(), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
