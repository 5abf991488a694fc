package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/auth"
	"journal-backend/internal/domains/reviewer"
	"journal-backend/pkg/logger"
)

// reviewerService implements reviewer.Service.
// Roster writes and Auth flag updates are sequential, not atomic; a
// failure between them is logged and left for manual reconciliation.
type reviewerService struct {
	repo     reviewer.Repository
	authRepo auth.Repository
}

func NewReviewerService(repo reviewer.Repository, authRepo auth.Repository) reviewer.Service {
	return &reviewerService{
		repo:     repo,
		authRepo: authRepo,
	}
}

// Register adds a reviewer and flips isReviewer on the matching Auth
// record. Registration never creates an identity: a missing Auth record
// is an explicit precondition failure.
func (s *reviewerService) Register(ctx context.Context, req reviewer.RegisterRequest) (*reviewer.Reviewer, error) {
	if err := req.Validate(); err != nil {
		return nil, &reviewer.ReviewerError{
			Code:    "INVALID_REVIEWER",
			Message: err.Error(),
			Status:  400,
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if exists, err := s.repo.ExistsByEmail(ctx, email); err != nil {
		return nil, reviewer.NewReviewerStoreError("email check", err)
	} else if exists {
		return nil, reviewer.NewReviewerEmailExists(email)
	}

	account, err := s.authRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, reviewer.NewReviewerStoreError("account lookup", err)
	}
	if account == nil {
		return nil, reviewer.NewAccountMissing(email)
	}

	rec := &reviewer.Reviewer{
		Name:        strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName),
		Email:       email,
		Affiliation: strings.TrimSpace(req.Affiliation),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if _, err := s.authRepo.SetReviewerFlag(ctx, email, true); err != nil {
		// Roster entry exists, flag did not flip. Not rolled back.
		logger.Error("Failed to set reviewer flag after registration", err)
	}

	return rec, nil
}

// RegisterBulk inserts the whole batch or nothing. No per-record
// reporting; Auth flags are not touched on the bulk path.
func (s *reviewerService) RegisterBulk(ctx context.Context, records []reviewer.BulkRecord) (int, error) {
	if len(records) == 0 {
		return 0, &reviewer.ReviewerError{
			Code:    "EMPTY_BATCH",
			Message: "No reviewer records supplied",
			Status:  400,
		}
	}

	batch := make([]*reviewer.Reviewer, 0, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return 0, &reviewer.ReviewerError{
				Code:    "INVALID_REVIEWER",
				Message: err.Error(),
				Status:  400,
			}
		}

		batch = append(batch, &reviewer.Reviewer{
			Name:        strings.TrimSpace(rec.Name),
			Email:       strings.ToLower(strings.TrimSpace(rec.Email)),
			Affiliation: strings.TrimSpace(rec.Affiliation),
		})
	}

	if err := s.repo.CreateMany(ctx, batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

func (s *reviewerService) List(ctx context.Context) ([]*reviewer.Reviewer, error) {
	reviewers, err := s.repo.List(ctx)
	if err != nil {
		return nil, reviewer.NewReviewerStoreError("list", err)
	}
	if reviewers == nil {
		reviewers = []*reviewer.Reviewer{}
	}
	return reviewers, nil
}

// Remove deletes the roster entry and clears the Auth flag. The Auth
// record itself stays.
func (s *reviewerService) Remove(ctx context.Context, id primitive.ObjectID) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return reviewer.NewReviewerStoreError("lookup", err)
	}
	if rec == nil {
		return reviewer.NewReviewerNotFound()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if _, err := s.authRepo.SetReviewerFlag(ctx, rec.Email, false); err != nil {
		logger.Error("Failed to clear reviewer flag after removal", err)
	}

	return nil
}
