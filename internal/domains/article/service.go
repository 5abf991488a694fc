package article

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/shared"
)

// ReviewNotifier queues review-request emails for the worker.
// Satisfied by the asynq queue client.
type ReviewNotifier interface {
	EnqueueReviewRequest(p shared.ReviewRequestPayload) error
}

// Service is the business logic contract for the article domain.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Article, error)

	// ListForUser returns the union of owned and authored articles,
	// de-duplicated by id with owned articles taking precedence.
	ListForUser(ctx context.Context, userID primitive.ObjectID, email string) ([]*Article, error)

	Update(ctx context.Context, id primitive.ObjectID, req UpdateRequest) (*Article, error)
	ListByJournal(ctx context.Context, journalID string) ([]*Article, error)

	// UpdateReview replaces the single reviewer entry matching the
	// email. A missing match is an explicit error, never a no-op.
	UpdateReview(ctx context.Context, articleID primitive.ObjectID, reviewerEmail string, patch ReviewPatch) (*Article, error)

	// ListForReviewer projects each result down to the caller's own
	// reviewer entry; other reviewers' entries are never exposed.
	ListForReviewer(ctx context.Context, email string) ([]*Article, error)

	AssignReviewers(ctx context.Context, articleID primitive.ObjectID, req AssignReviewersRequest) (*Article, error)
}
