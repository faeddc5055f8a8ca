package education

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Institution string             `bson:"institution" json:"institution"`
	Degree      string             `bson:"degree" json:"degree"`
	Field       string             `bson:"field,omitempty" json:"field,omitempty"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     *bool
	Description *string
	Location    *string
	Order       *int
}
