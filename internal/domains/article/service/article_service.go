package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/article"
	"journal-backend/internal/domains/reviewer"
	"journal-backend/internal/shared"
	"journal-backend/pkg/logger"
)

// articleService implements article.Service.
type articleService struct {
	repo         article.Repository
	reviewerRepo reviewer.Repository
	notifier     article.ReviewNotifier
}

func NewArticleService(repo article.Repository, reviewerRepo reviewer.Repository, notifier article.ReviewNotifier) article.Service {
	return &articleService{
		repo:         repo,
		reviewerRepo: reviewerRepo,
		notifier:     notifier,
	}
}

// Submit persists a new article with an empty reviewers list.
func (s *articleService) Submit(ctx context.Context, req article.SubmitRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, article.NewInvalidSubmission(err.Error())
	}
	for _, a := range req.Authors {
		if err := a.Validate(); err != nil {
			return nil, article.NewInvalidSubmission(err.Error())
		}
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, article.NewInvalidSubmission("userId is not a valid id")
	}

	a := &article.Article{
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		Abstract:  strings.TrimSpace(req.Abstract),
		Keywords:  req.Keywords,
		FileRef:   req.FileRef,
		Authors:   req.Authors,
		JournalID: req.JournalID,
		Reviewers: []article.ReviewEntry{},
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, article.NewArticleStoreError("create", err)
	}
	return a, nil
}

// ListForUser merges owned and authored articles. Owned articles take
// precedence; an article matched by both conditions appears once.
func (s *articleService) ListForUser(ctx context.Context, userID primitive.ObjectID, email string) ([]*article.Article, error) {
	owned, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, article.NewArticleStoreError("owner list", err)
	}

	authored, err := s.repo.ListByAuthorEmail(ctx, email)
	if err != nil {
		return nil, article.NewArticleStoreError("author list", err)
	}

	seen := make(map[primitive.ObjectID]bool, len(owned))
	merged := make([]*article.Article, 0, len(owned)+len(authored))

	for _, a := range owned {
		seen[a.ID] = true
		merged = append(merged, a)
	}
	for _, a := range authored {
		if !seen[a.ID] {
			seen[a.ID] = true
			merged = append(merged, a)
		}
	}

	if len(merged) == 0 {
		return nil, article.NewNoArticlesFound()
	}
	return merged, nil
}

// Update replaces the mutable fields of an article.
func (s *articleService) Update(ctx context.Context, id primitive.ObjectID, req article.UpdateRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, article.NewInvalidSubmission(err.Error())
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, article.NewArticleStoreError("lookup", err)
	}
	if existing == nil {
		return nil, article.NewArticleNotFound()
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.Abstract = strings.TrimSpace(req.Abstract)
	existing.Keywords = req.Keywords
	existing.Authors = req.Authors
	existing.JournalID = req.JournalID
	if req.Reviewers != nil {
		existing.Reviewers = req.Reviewers
	}

	if err := s.repo.Replace(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *articleService) ListByJournal(ctx context.Context, journalID string) ([]*article.Article, error) {
	articles, err := s.repo.ListByJournal(ctx, journalID)
	if err != nil {
		return nil, article.NewArticleStoreError("journal list", err)
	}
	if len(articles) == 0 {
		return nil, article.NewNoArticlesFound()
	}
	return articles, nil
}

// UpdateReview replaces the first reviewer entry matching the email.
func (s *articleService) UpdateReview(ctx context.Context, articleID primitive.ObjectID, reviewerEmail string, patch article.ReviewPatch) (*article.Article, error) {
	if err := patch.Validate(); err != nil {
		return nil, article.NewInvalidSubmission(err.Error())
	}

	a, err := s.repo.FindByID(ctx, articleID)
	if err != nil {
		return nil, article.NewArticleStoreError("lookup", err)
	}
	if a == nil {
		return nil, article.NewArticleNotFound()
	}

	idx := -1
	for i, entry := range a.Reviewers {
		if entry.Email == reviewerEmail {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, article.NewReviewEntryNotFound(reviewerEmail)
	}

	a.Reviewers[idx] = article.ReviewEntry{
		Name:     patch.Name,
		Email:    patch.Email,
		Status:   patch.Status,
		Comments: patch.Comments,
	}

	if err := s.repo.SetReviewers(ctx, articleID, a.Reviewers); err != nil {
		return nil, err
	}
	return a, nil
}

// ListForReviewer restricts each article to the caller's own reviewer
// entry so one reviewer never sees another's comments.
func (s *articleService) ListForReviewer(ctx context.Context, email string) ([]*article.Article, error) {
	articles, err := s.repo.ListByReviewerEmail(ctx, email)
	if err != nil {
		return nil, article.NewArticleStoreError("reviewer list", err)
	}
	if len(articles) == 0 {
		return nil, article.NewNoArticlesFound()
	}

	for _, a := range articles {
		own := make([]article.ReviewEntry, 0, 1)
		for _, entry := range a.Reviewers {
			if entry.Email == email {
				own = append(own, entry)
				break
			}
		}
		a.Reviewers = own
	}

	return articles, nil
}

// AssignReviewers attaches roster reviewers with pending status and
// queues a review-request email per reviewer.
func (s *articleService) AssignReviewers(ctx context.Context, articleID primitive.ObjectID, req article.AssignReviewersRequest) (*article.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, article.NewInvalidSubmission(err.Error())
	}

	a, err := s.repo.FindByID(ctx, articleID)
	if err != nil {
		return nil, article.NewArticleStoreError("lookup", err)
	}
	if a == nil {
		return nil, article.NewArticleNotFound()
	}

	assigned := make(map[string]bool, len(a.Reviewers))
	for _, entry := range a.Reviewers {
		assigned[entry.Email] = true
	}

	for _, rawID := range req.ReviewerIDs {
		id, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			return nil, article.NewInvalidSubmission("reviewerIds contains an invalid id")
		}

		rec, err := s.reviewerRepo.FindByID(ctx, id)
		if err != nil {
			return nil, article.NewArticleStoreError("reviewer lookup", err)
		}
		if rec == nil {
			return nil, article.NewAssignedReviewerNotFound(rawID)
		}
		if assigned[rec.Email] {
			continue
		}

		a.Reviewers = append(a.Reviewers, article.ReviewEntry{
			Name:   rec.Name,
			Email:  rec.Email,
			Status: article.ReviewPending,
		})
		assigned[rec.Email] = true

		if err := s.notifier.EnqueueReviewRequest(shared.ReviewRequestPayload{
			ArticleID:    articleID.Hex(),
			ArticleTitle: a.Title,
			ReviewerName: rec.Name,
			Email:        rec.Email,
		}); err != nil {
			// Assignment is already decided; the email is best-effort.
			logger.Error("Failed to enqueue review request", err)
		}
	}

	if err := s.repo.SetReviewers(ctx, articleID, a.Reviewers); err != nil {
		return nil, err
	}
	return a, nil
}
