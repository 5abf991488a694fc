package reviewer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "reviewers"

// Reviewer is a roster entry. Its existence implies an Auth record with
// isReviewer=true for the same email; removal only clears that flag.
type Reviewer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Affiliation string             `bson:"affiliation" json:"affiliation"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
