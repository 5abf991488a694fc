package journal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is the business logic contract for the journal domain.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Journal, error)
	List(ctx context.Context) ([]*WithEditor, error)

	// Delete removes the journal and cascades to its editor's Auth
	// record when one is linked.
	Delete(ctx context.Context, id primitive.ObjectID) error

	AssignEditor(ctx context.Context, journalID primitive.ObjectID, req AssignEditorRequest) (*AssignEditorResponse, error)
	RemoveEditor(ctx context.Context, journalID primitive.ObjectID) error
}
