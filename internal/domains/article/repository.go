package article

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data access contract for articles.
type Repository interface {
	Create(ctx context.Context, a *Article) error

	// FindByID returns (nil, nil) when no article matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Article, error)

	ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]*Article, error)
	ListByAuthorEmail(ctx context.Context, email string) ([]*Article, error)
	ListByJournal(ctx context.Context, journalID string) ([]*Article, error)
	ListByReviewerEmail(ctx context.Context, email string) ([]*Article, error)

	// Replace overwrites the mutable fields of an existing article.
	Replace(ctx context.Context, id primitive.ObjectID, a *Article) error

	// SetReviewers overwrites the reviewers array.
	SetReviewers(ctx context.Context, id primitive.ObjectID, reviewers []ReviewEntry) error
}
