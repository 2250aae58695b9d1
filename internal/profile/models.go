package profile

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is embedded in the profile document. IDs are client-generated hex
// strings so they stay opaque text end to end.
type Project struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Profile is the singleton portfolio document, selected by the "main"
// discriminator. OID never leaves the service layer; ID carries the rendered
// hex text.
type Profile struct {
	OID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID         string             `bson:"-" json:"id,omitempty"`
	Type       string             `bson:"type" json:"-"`
	Name       string             `bson:"name" json:"name"`
	Title      string             `bson:"title" json:"title"`
	Email      string             `bson:"email" json:"email"`
	Location   string             `bson:"location" json:"location"`
	Bio        string             `bson:"bio" json:"bio"`
	Experience string             `bson:"experience" json:"experience"`
	Skills     []string           `bson:"skills" json:"skills"`
	Projects   []Project          `bson:"projects" json:"projects"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// Update carries a partial profile patch. Nil fields are left untouched; an
// explicit empty skills array clears the list.
type Update struct {
	Name       *string  `json:"name"`
	Title      *string  `json:"title"`
	Email      *string  `json:"email"`
	Location   *string  `json:"location"`
	Bio        *string  `json:"bio"`
	Experience *string  `json:"experience"`
	Skills     []string `json:"skills"`
}

// ProjectInput is the payload for appending a project.
type ProjectInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Technologies []string `json:"technologies"`
}

// Default returns the operator default profile used to seed an empty store.
func Default() *Profile {
	now := time.Now().UTC()
	return &Profile{
		Type:       discriminator,
		Name:       "Alex Johnson",
		Title:      "Full Stack Developer",
		Email:      "alex.johnson@email.com",
		Location:   "New York, USA",
		Bio:        "Passionate developer creating amazing web experiences with Angular and FastAPI.",
		Experience: "3+ years",
		Skills:     []string{"JavaScript", "TypeScript", "Angular", "Python", "FastAPI", "MongoDB"},
		Projects: []Project{
			{
				ID:           primitive.NewObjectID().Hex(),
				Name:         "E-Commerce Platform",
				Description:  "Full-stack e-commerce solution with Angular and FastAPI",
				Technologies: []string{"Angular", "FastAPI", "MongoDB"},
				CreatedAt:    now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
