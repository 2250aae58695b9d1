package profile

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alexjohnson-dev/portfolio-backend/internal/database"
)

const (
	collection    = "profiles"
	discriminator = "main"
)

var ErrNotFound = errors.New("profile not found")

// Service owns the singleton profile document.
type Service struct {
	store database.Store
}

func NewService(store database.Store) *Service {
	return &Service{store: store}
}

func filter() bson.M {
	return bson.M{"type": discriminator}
}

// Get returns the singleton profile with its identifier rendered as text.
func (s *Service) Get(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := s.store.FindOne(ctx, collection, filter(), &p); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.OID.IsZero() {
		p.ID = p.OID.Hex()
	}
	return &p, nil
}

// Update applies only the fields present in upd and refreshes updated_at.
// A patch whose values equal the stored ones still succeeds; ErrNotFound is
// reserved for a missing singleton.
func (s *Service) Update(ctx context.Context, upd *Update) (*Profile, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}

	matched, _, err := s.store.UpdateOne(ctx, collection, filter(), set)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx)
}

// AddProject appends a new project with a fresh identifier to the profile's
// project list. updated_at is deliberately left alone: project additions are
// tracked by the project's own created_at.
func (s *Service) AddProject(ctx context.Context, in *ProjectInput) (*Project, error) {
	techs := in.Technologies
	if techs == nil {
		techs = []string{}
	}
	prj := Project{
		ID:           primitive.NewObjectID().Hex(),
		Name:         in.Name,
		Description:  in.Description,
		Technologies: techs,
		CreatedAt:    time.Now().UTC(),
	}
	modified, err := s.store.Push(ctx, collection, filter(), "projects", prj)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, ErrNotFound
	}
	return &prj, nil
}

// EnsureDefault creates the singleton from def when it does not exist yet.
// It reports whether a document was created; calling it again is a no-op.
func (s *Service) EnsureDefault(ctx context.Context, def *Profile) (bool, error) {
	var existing Profile
	err := s.store.FindOne(ctx, collection, filter(), &existing)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, err
	}
	if _, err := s.store.InsertOne(ctx, collection, def); err != nil {
		return false, err
	}
	return true, nil
}
