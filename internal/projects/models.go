package projects

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	LongDescription string             `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Technologies    []string           `bson:"technologies" json:"technologies"`
	GithubURL       string             `bson:"githubUrl" json:"githubUrl"`
	LiveURL         string             `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Featured        bool               `bson:"featured" json:"featured"`
	Order           int                `bson:"order" json:"order"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title           *string
	Description     *string
	LongDescription *string
	Technologies    *[]string
	GithubURL       *string
	LiveURL         *string
	Image           *string
	Featured        *bool
	Order           *int
}
