package journal

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/auth"
)

const Collection = "journals"

// Journal holds a publication venue. EditorID is a soft reference to an
// Auth record; at most one editor per journal.
type Journal struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	EditorID    *primitive.ObjectID `bson:"editorId,omitempty" json:"editorId,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// WithEditor is the list projection: editorId normalized to the raw
// reference (or null) and the editor identity expanded alongside it.
type WithEditor struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EditorID    *string   `json:"editorId"`
	Editor      *auth.DTO `json:"editor"`
	CreatedAt   time.Time `json:"createdAt"`
}
