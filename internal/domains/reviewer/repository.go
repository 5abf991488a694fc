package reviewer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data access contract for the reviewer roster.
type Repository interface {
	Create(ctx context.Context, r *Reviewer) error

	// CreateMany performs an ordered batch insert: the first failure
	// aborts the batch.
	CreateMany(ctx context.Context, records []*Reviewer) error

	// FindByID returns (nil, nil) when no reviewer matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Reviewer, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*Reviewer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
