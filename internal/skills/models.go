package skills

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories a skill may belong to. Display grouping only; no behavior hangs
// off the category beyond list filtering.
var Categories = []string{"languages", "frontend", "backend", "databases", "tools", "languages_spoken"}

type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	Level     int                `bson:"level" json:"level"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name     *string
	Category *string
	Level    *int
	Icon     *string
	Order    *int
}
