package reviewer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is the business logic contract for the reviewer domain.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Reviewer, error)
	RegisterBulk(ctx context.Context, records []BulkRecord) (int, error)
	List(ctx context.Context) ([]*Reviewer, error)

	// Remove deletes the roster entry and clears the isReviewer flag on
	// the matching Auth record; the Auth record itself is kept.
	Remove(ctx context.Context, id primitive.ObjectID) error
}
