package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"journal-backend/internal/domains/article"
	"journal-backend/internal/domains/reviewer"
	"journal-backend/internal/shared"
)

// ============================================
// FAKES
// ============================================

type fakeArticleRepo struct {
	articles map[primitive.ObjectID]*article.Article
	order    []primitive.ObjectID
	failNext error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[primitive.ObjectID]*article.Article)}
}

func (f *fakeArticleRepo) add(a *article.Article) *article.Article {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.articles[a.ID] = a
	f.order = append(f.order, a.ID)
	return a
}

func (f *fakeArticleRepo) Create(ctx context.Context, a *article.Article) error {
	if f.failNext != nil {
		return f.failNext
	}
	f.add(a)
	return nil
}

func (f *fakeArticleRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*article.Article, error) {
	return f.articles[id], nil
}

func (f *fakeArticleRepo) ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]*article.Article, error) {
	var out []*article.Article
	for _, id := range f.order {
		if f.articles[id].UserID == userID {
			out = append(out, f.articles[id])
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) ListByAuthorEmail(ctx context.Context, email string) ([]*article.Article, error) {
	var out []*article.Article
	for _, id := range f.order {
		for _, author := range f.articles[id].Authors {
			if author.Email == email {
				out = append(out, f.articles[id])
				break
			}
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) ListByJournal(ctx context.Context, journalID string) ([]*article.Article, error) {
	var out []*article.Article
	for _, id := range f.order {
		if f.articles[id].JournalID == journalID {
			out = append(out, f.articles[id])
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) ListByReviewerEmail(ctx context.Context, email string) ([]*article.Article, error) {
	var out []*article.Article
	for _, id := range f.order {
		for _, entry := range f.articles[id].Reviewers {
			if entry.Email == email {
				out = append(out, f.articles[id])
				break
			}
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) Replace(ctx context.Context, id primitive.ObjectID, a *article.Article) error {
	if _, ok := f.articles[id]; !ok {
		return article.NewArticleNotFound()
	}
	a.ID = id
	f.articles[id] = a
	return nil
}

func (f *fakeArticleRepo) SetReviewers(ctx context.Context, id primitive.ObjectID, reviewers []article.ReviewEntry) error {
	a, ok := f.articles[id]
	if !ok {
		return article.NewArticleNotFound()
	}
	a.Reviewers = reviewers
	return nil
}

type fakeReviewerRepo struct {
	records map[primitive.ObjectID]*reviewer.Reviewer
}

func newFakeReviewerRepo() *fakeReviewerRepo {
	return &fakeReviewerRepo{records: make(map[primitive.ObjectID]*reviewer.Reviewer)}
}

func (f *fakeReviewerRepo) add(name, email string) *reviewer.Reviewer {
	rec := &reviewer.Reviewer{ID: primitive.NewObjectID(), Name: name, Email: email}
	f.records[rec.ID] = rec
	return rec
}

func (f *fakeReviewerRepo) Create(ctx context.Context, r *reviewer.Reviewer) error { return nil }
func (f *fakeReviewerRepo) CreateMany(ctx context.Context, records []*reviewer.Reviewer) error {
	return nil
}
func (f *fakeReviewerRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*reviewer.Reviewer, error) {
	return f.records[id], nil
}
func (f *fakeReviewerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeReviewerRepo) List(ctx context.Context) ([]*reviewer.Reviewer, error) { return nil, nil }
func (f *fakeReviewerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type fakeNotifier struct {
	enqueued []shared.ReviewRequestPayload
	fail     bool
}

func (f *fakeNotifier) EnqueueReviewRequest(p shared.ReviewRequestPayload) error {
	if f.fail {
		return errors.New("queue unavailable")
	}
	f.enqueued = append(f.enqueued, p)
	return nil
}

func newService(repo *fakeArticleRepo, rr *fakeReviewerRepo, n *fakeNotifier) article.Service {
	return NewArticleService(repo, rr, n)
}

// ============================================
// SUBMIT
// ============================================

func TestSubmit_CreatesArticleWithEmptyReviewers(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	userID := primitive.NewObjectID()
	created, err := svc.Submit(context.Background(), article.SubmitRequest{
		UserID:    userID.Hex(),
		Title:     "Adaptive Mesh Refinement",
		Abstract:  "A study of refinement strategies.",
		Keywords:  []string{"mesh", "refinement"},
		Authors:   []article.Author{{Name: "Dana Cole", Email: "dana@uni.edu", Affiliation: "Uni"}},
		JournalID: "J1",
		FileRef:   "paper.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "J1", created.JournalID)
	assert.Len(t, created.Keywords, 2)
	assert.NotNil(t, created.Reviewers)
	assert.Empty(t, created.Reviewers)
	assert.Len(t, repo.articles, 1)
}

func TestSubmit_ValidationFailures(t *testing.T) {
	svc := newService(newFakeArticleRepo(), newFakeReviewerRepo(), &fakeNotifier{})

	tests := []struct {
		name string
		req  article.SubmitRequest
	}{
		{"missing title", article.SubmitRequest{
			UserID: primitive.NewObjectID().Hex(), Abstract: "a",
			Keywords: []string{"k"}, Authors: []article.Author{{Email: "a@b.c"}},
			JournalID: "J1", FileRef: "f.pdf",
		}},
		{"missing authors", article.SubmitRequest{
			UserID: primitive.NewObjectID().Hex(), Title: "t", Abstract: "a",
			Keywords: []string{"k"}, JournalID: "J1", FileRef: "f.pdf",
		}},
		{"invalid author email", article.SubmitRequest{
			UserID: primitive.NewObjectID().Hex(), Title: "t", Abstract: "a",
			Keywords: []string{"k"}, Authors: []article.Author{{Email: "not-an-email"}},
			JournalID: "J1", FileRef: "f.pdf",
		}},
		{"bad user id", article.SubmitRequest{
			UserID: "nope", Title: "t", Abstract: "a",
			Keywords: []string{"k"}, Authors: []article.Author{{Email: "a@b.c"}},
			JournalID: "J1", FileRef: "f.pdf",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.req)
			require.Error(t, err)

			status, _, _ := article.GetErrorResponse(err)
			assert.Equal(t, 400, status)
		})
	}
}

// ============================================
// LIST FOR USER
// ============================================

func TestListForUser_MergesOwnedAndAuthored(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	userID := primitive.NewObjectID()
	email := "dana@uni.edu"

	owned := repo.add(&article.Article{UserID: userID, Title: "Owned"})
	// Owned AND authored: must appear once.
	both := repo.add(&article.Article{
		UserID:  userID,
		Title:   "Both",
		Authors: []article.Author{{Email: email}},
	})
	authored := repo.add(&article.Article{
		UserID:  primitive.NewObjectID(),
		Title:   "Authored",
		Authors: []article.Author{{Email: email}},
	})

	result, err := svc.ListForUser(context.Background(), userID, email)
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Owned articles come first, then authored-only ones.
	assert.Equal(t, owned.ID, result[0].ID)
	assert.Equal(t, both.ID, result[1].ID)
	assert.Equal(t, authored.ID, result[2].ID)
}

func TestListForUser_EmptyUnionIsNotFound(t *testing.T) {
	svc := newService(newFakeArticleRepo(), newFakeReviewerRepo(), &fakeNotifier{})

	_, err := svc.ListForUser(context.Background(), primitive.NewObjectID(), "nobody@uni.edu")
	require.Error(t, err)

	status, _, code := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "NO_ARTICLES_FOUND", code)
}

// ============================================
// UPDATE REVIEW
// ============================================

func TestUpdateReview_ReplacesMatchingEntry(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	a := repo.add(&article.Article{
		UserID: primitive.NewObjectID(),
		Reviewers: []article.ReviewEntry{
			{Name: "Rey", Email: "rey@uni.edu", Status: article.ReviewPending},
			{Name: "Kim", Email: "kim@uni.edu", Status: article.ReviewPending},
		},
	})

	updated, err := svc.UpdateReview(context.Background(), a.ID, "rey@uni.edu", article.ReviewPatch{
		Name:     "Rey",
		Email:    "rey@uni.edu",
		Status:   article.ReviewAccepted,
		Comments: "Solid methodology.",
	})
	require.NoError(t, err)

	require.Len(t, updated.Reviewers, 2)
	assert.Equal(t, article.ReviewAccepted, updated.Reviewers[0].Status)
	assert.Equal(t, "Solid methodology.", updated.Reviewers[0].Comments)
	// The other entry is untouched.
	assert.Equal(t, article.ReviewPending, updated.Reviewers[1].Status)
}

func TestUpdateReview_MissingEntryIsExplicitError(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	a := repo.add(&article.Article{
		UserID:    primitive.NewObjectID(),
		Reviewers: []article.ReviewEntry{{Email: "rey@uni.edu", Status: article.ReviewPending}},
	})

	_, err := svc.UpdateReview(context.Background(), a.ID, "ghost@uni.edu", article.ReviewPatch{
		Email:  "ghost@uni.edu",
		Status: article.ReviewAccepted,
	})
	require.Error(t, err)

	status, _, code := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "REVIEW_ENTRY_NOT_FOUND", code)

	// The stored article is unchanged.
	assert.Equal(t, article.ReviewPending, repo.articles[a.ID].Reviewers[0].Status)
}

func TestUpdateReview_ArticleMissing(t *testing.T) {
	svc := newService(newFakeArticleRepo(), newFakeReviewerRepo(), &fakeNotifier{})

	_, err := svc.UpdateReview(context.Background(), primitive.NewObjectID(), "rey@uni.edu", article.ReviewPatch{
		Email:  "rey@uni.edu",
		Status: article.ReviewRejected,
	})
	require.Error(t, err)

	status, _, code := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "ARTICLE_NOT_FOUND", code)
}

// ============================================
// LIST FOR REVIEWER
// ============================================

func TestListForReviewer_ProjectsOwnEntryOnly(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	repo.add(&article.Article{
		UserID: primitive.NewObjectID(),
		Title:  "Shared Review",
		Reviewers: []article.ReviewEntry{
			{Name: "Rey", Email: "rey@uni.edu", Status: article.ReviewPending},
			{Name: "Kim", Email: "kim@uni.edu", Status: article.ReviewAccepted, Comments: "private"},
		},
	})

	result, err := svc.ListForReviewer(context.Background(), "rey@uni.edu")
	require.NoError(t, err)
	require.Len(t, result, 1)

	require.Len(t, result[0].Reviewers, 1)
	assert.Equal(t, "rey@uni.edu", result[0].Reviewers[0].Email)
}

func TestListForReviewer_NoAssignments(t *testing.T) {
	svc := newService(newFakeArticleRepo(), newFakeReviewerRepo(), &fakeNotifier{})

	_, err := svc.ListForReviewer(context.Background(), "rey@uni.edu")
	require.Error(t, err)

	status, _, _ := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
}

// ============================================
// ASSIGN REVIEWERS
// ============================================

func TestAssignReviewers_AppendsPendingEntriesAndNotifies(t *testing.T) {
	repo := newFakeArticleRepo()
	reviewerRepo := newFakeReviewerRepo()
	notifier := &fakeNotifier{}
	svc := newService(repo, reviewerRepo, notifier)

	a := repo.add(&article.Article{
		UserID: primitive.NewObjectID(),
		Title:  "Sparse Solvers",
	})
	rey := reviewerRepo.add("Rey Ito", "rey@uni.edu")
	kim := reviewerRepo.add("Kim Park", "kim@uni.edu")

	updated, err := svc.AssignReviewers(context.Background(), a.ID, article.AssignReviewersRequest{
		ReviewerIDs: []string{rey.ID.Hex(), kim.ID.Hex()},
	})
	require.NoError(t, err)

	require.Len(t, updated.Reviewers, 2)
	for _, entry := range updated.Reviewers {
		assert.Equal(t, article.ReviewPending, entry.Status)
		assert.Empty(t, entry.Comments)
	}

	require.Len(t, notifier.enqueued, 2)
	assert.Equal(t, "Sparse Solvers", notifier.enqueued[0].ArticleTitle)
	assert.Equal(t, "rey@uni.edu", notifier.enqueued[0].Email)
}

func TestAssignReviewers_SkipsAlreadyAssigned(t *testing.T) {
	repo := newFakeArticleRepo()
	reviewerRepo := newFakeReviewerRepo()
	notifier := &fakeNotifier{}
	svc := newService(repo, reviewerRepo, notifier)

	rey := reviewerRepo.add("Rey Ito", "rey@uni.edu")
	a := repo.add(&article.Article{
		UserID:    primitive.NewObjectID(),
		Reviewers: []article.ReviewEntry{{Name: "Rey Ito", Email: "rey@uni.edu", Status: article.ReviewAccepted}},
	})

	updated, err := svc.AssignReviewers(context.Background(), a.ID, article.AssignReviewersRequest{
		ReviewerIDs: []string{rey.ID.Hex()},
	})
	require.NoError(t, err)

	// No duplicate entry and no second invitation.
	require.Len(t, updated.Reviewers, 1)
	assert.Equal(t, article.ReviewAccepted, updated.Reviewers[0].Status)
	assert.Empty(t, notifier.enqueued)
}

func TestAssignReviewers_UnknownReviewer(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	a := repo.add(&article.Article{UserID: primitive.NewObjectID()})

	_, err := svc.AssignReviewers(context.Background(), a.ID, article.AssignReviewersRequest{
		ReviewerIDs: []string{primitive.NewObjectID().Hex()},
	})
	require.Error(t, err)

	status, _, code := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "REVIEWER_NOT_FOUND", code)
}

func TestAssignReviewers_EnqueueFailureDoesNotBlockAssignment(t *testing.T) {
	repo := newFakeArticleRepo()
	reviewerRepo := newFakeReviewerRepo()
	svc := newService(repo, reviewerRepo, &fakeNotifier{fail: true})

	rey := reviewerRepo.add("Rey Ito", "rey@uni.edu")
	a := repo.add(&article.Article{UserID: primitive.NewObjectID()})

	updated, err := svc.AssignReviewers(context.Background(), a.ID, article.AssignReviewersRequest{
		ReviewerIDs: []string{rey.ID.Hex()},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Reviewers, 1)
}

// ============================================
// UPDATE / LIST BY JOURNAL
// ============================================

func TestUpdate_ReplacesMutableFields(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	a := repo.add(&article.Article{
		UserID:    primitive.NewObjectID(),
		Title:     "Old Title",
		Abstract:  "Old abstract",
		Keywords:  []string{"old"},
		Authors:   []article.Author{{Email: "dana@uni.edu"}},
		JournalID: "J1",
	})

	updated, err := svc.Update(context.Background(), a.ID, article.UpdateRequest{
		Title:     "New Title",
		Abstract:  "New abstract",
		Keywords:  []string{"new", "fresh"},
		Authors:   []article.Author{{Email: "dana@uni.edu"}},
		JournalID: "J2",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "J2", updated.JournalID)
	assert.Len(t, updated.Keywords, 2)
}

func TestUpdate_MissingArticle(t *testing.T) {
	svc := newService(newFakeArticleRepo(), newFakeReviewerRepo(), &fakeNotifier{})

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), article.UpdateRequest{
		Title:     "t",
		Abstract:  "a",
		Keywords:  []string{"k"},
		Authors:   []article.Author{{Email: "a@b.c"}},
		JournalID: "J1",
	})
	require.Error(t, err)

	status, _, _ := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
}

func TestListByJournal(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newService(repo, newFakeReviewerRepo(), &fakeNotifier{})

	repo.add(&article.Article{UserID: primitive.NewObjectID(), JournalID: "J1"})
	repo.add(&article.Article{UserID: primitive.NewObjectID(), JournalID: "J2"})
	repo.add(&article.Article{UserID: primitive.NewObjectID(), JournalID: "J1"})

	result, err := svc.ListByJournal(context.Background(), "J1")
	require.NoError(t, err)
	assert.Len(t, result, 2)

	_, err = svc.ListByJournal(context.Background(), "J9")
	require.Error(t, err)
	status, _, _ := article.GetErrorResponse(err)
	assert.Equal(t, 404, status)
}
