package article

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Collection = "articles"

// Review states for a reviewer entry.
const (
	ReviewPending  = "pending"
	ReviewAccepted = "accepted"
	ReviewRejected = "rejected"
)

// Author is one listed author of a submission. An article is visible to
// any user whose email matches an author entry, in addition to its owner.
type Author struct {
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Affiliation string `bson:"affiliation,omitempty" json:"affiliation,omitempty"`
}

// ReviewEntry is one reviewer's slot on an article, matched by email.
type ReviewEntry struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Status   string `bson:"status" json:"status"`
	Comments string `bson:"comments,omitempty" json:"comments,omitempty"`
}

// Article is a submitted manuscript. JournalID is a soft reference;
// reviewers start empty on submission.
type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Abstract  string             `bson:"abstract" json:"abstract"`
	Keywords  []string           `bson:"keywords" json:"keywords"`
	FileRef   string             `bson:"fileRef" json:"fileRef"`
	Authors   []Author           `bson:"authors" json:"authors"`
	JournalID string             `bson:"journalId" json:"journalId"`
	Reviewers []ReviewEntry      `bson:"reviewers" json:"reviewers"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
