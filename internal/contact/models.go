package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message status lifecycle: new -> read -> replied, driven only by explicit
// authenticated updates. No transition is forbidden.
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ListOptions carries filter and pagination parameters for listing messages.
type ListOptions struct {
	Status string // empty returns all statuses
	Page   int
	Limit  int
}

// Normalize clamps pagination to sane bounds (page >= 1, 1 <= limit <= 100).
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 10
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
}
