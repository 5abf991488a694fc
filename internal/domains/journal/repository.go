package journal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data access contract for journals.
type Repository interface {
	Create(ctx context.Context, j *Journal) error

	// FindByID returns (nil, nil) when the journal does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Journal, error)

	List(ctx context.Context) ([]*Journal, error)

	// SetEditor links or clears (nil) the journal's editor reference.
	SetEditor(ctx context.Context, id primitive.ObjectID, editorID *primitive.ObjectID) error

	Delete(ctx context.Context, id primitive.ObjectID) error
}
