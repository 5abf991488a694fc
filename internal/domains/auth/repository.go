package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data access contract for identity records.
// Cross-domain soft references (journal editor cascade, reviewer flag
// reset) go through this interface, never through raw collections.
type Repository interface {
	Create(ctx context.Context, record *Auth) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Auth, error)
	FindByEmail(ctx context.Context, email string) (*Auth, error)
	FindByUsername(ctx context.Context, username string) (*Auth, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// SetReviewerFlag flips isReviewer on the record matching email.
	// Returns (false, nil) when no record matches.
	SetReviewerFlag(ctx context.Context, email string, isReviewer bool) (bool, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
}
