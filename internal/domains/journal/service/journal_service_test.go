package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"journal-backend/internal/domains/auth"
	"journal-backend/internal/domains/journal"
)

// ============================================
// FAKES
// ============================================

type fakeJournalRepo struct {
	journals map[primitive.ObjectID]*journal.Journal
	order    []primitive.ObjectID
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{journals: make(map[primitive.ObjectID]*journal.Journal)}
}

func (f *fakeJournalRepo) add(j *journal.Journal) *journal.Journal {
	if j.ID.IsZero() {
		j.ID = primitive.NewObjectID()
	}
	f.journals[j.ID] = j
	f.order = append(f.order, j.ID)
	return j
}

func (f *fakeJournalRepo) Create(ctx context.Context, j *journal.Journal) error {
	f.add(j)
	return nil
}

func (f *fakeJournalRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*journal.Journal, error) {
	return f.journals[id], nil
}

func (f *fakeJournalRepo) List(ctx context.Context) ([]*journal.Journal, error) {
	var out []*journal.Journal
	for _, id := range f.order {
		out = append(out, f.journals[id])
	}
	return out, nil
}

func (f *fakeJournalRepo) SetEditor(ctx context.Context, id primitive.ObjectID, editorID *primitive.ObjectID) error {
	j, ok := f.journals[id]
	if !ok {
		return journal.NewJournalNotFound()
	}
	j.EditorID = editorID
	return nil
}

func (f *fakeJournalRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.journals[id]; !ok {
		return journal.NewJournalNotFound()
	}
	delete(f.journals, id)
	for i, jid := range f.order {
		if jid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeAuthRepo struct {
	records map[primitive.ObjectID]*auth.Auth
	deleted []primitive.ObjectID
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{records: make(map[primitive.ObjectID]*auth.Auth)}
}

func (f *fakeAuthRepo) add(record *auth.Auth) *auth.Auth {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	f.records[record.ID] = record
	return record
}

func (f *fakeAuthRepo) Create(ctx context.Context, record *auth.Auth) error {
	f.add(record)
	return nil
}

func (f *fakeAuthRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*auth.Auth, error) {
	return f.records[id], nil
}

func (f *fakeAuthRepo) FindByEmail(ctx context.Context, email string) (*auth.Auth, error) {
	for _, r := range f.records {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) FindByUsername(ctx context.Context, username string) (*auth.Auth, error) {
	for _, r := range f.records {
		if r.Username == username {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r, _ := f.FindByEmail(ctx, email)
	return r != nil, nil
}

func (f *fakeAuthRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	for _, r := range f.records {
		if r.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r, _ := f.FindByUsername(ctx, username)
	return r != nil, nil
}

func (f *fakeAuthRepo) SetReviewerFlag(ctx context.Context, email string, isReviewer bool) (bool, error) {
	for _, r := range f.records {
		if r.Email == email {
			r.IsReviewer = isReviewer
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.records[id]; !ok {
		return auth.NewAuthNotFound()
	}
	delete(f.records, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func editorRequest() journal.AssignEditorRequest {
	return journal.AssignEditorRequest{
		FirstName:   "Dana",
		MiddleName:  "Q",
		LastName:    "Cole",
		Email:       "dana@journal.org",
		PhoneNumber: "+15550001111",
		Gender:      "female",
	}
}

// ============================================
// ASSIGN EDITOR
// ============================================

func TestAssignEditor_ProvisionsIdentityAndLinksJournal(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	j := journalRepo.add(&journal.Journal{Title: "Applied Computing"})

	resp, err := svc.AssignEditor(context.Background(), j.ID, editorRequest())
	require.NoError(t, err)

	// Credentials: 8 uppercase alphanumerics, username from first name.
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), resp.Password)
	assert.True(t, strings.HasPrefix(resp.Username, "dana"))
	assert.Regexp(t, regexp.MustCompile(`^dana\d{4}$`), resp.Username)

	// The journal now references the new identity.
	require.NotNil(t, j.EditorID)
	stored := authRepo.records[*j.EditorID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsEditor)
	assert.Equal(t, "dana@journal.org", stored.Email)

	// Stored hash matches the plaintext disclosed once.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(resp.Password)))
}

func TestAssignEditor_EmailConflictCreatesNothing(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	j := journalRepo.add(&journal.Journal{Title: "Applied Computing"})
	authRepo.add(&auth.Auth{Email: "dana@journal.org", PhoneNumber: "+15559998888"})

	_, err := svc.AssignEditor(context.Background(), j.ID, editorRequest())
	require.Error(t, err)

	status, _, code := journal.GetErrorResponse(err)
	assert.Equal(t, 409, status)
	assert.Equal(t, "EDITOR_EMAIL_EXISTS", code)

	// No second identity and no link.
	assert.Len(t, authRepo.records, 1)
	assert.Nil(t, j.EditorID)
}

func TestAssignEditor_PhoneConflict(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	j := journalRepo.add(&journal.Journal{Title: "Applied Computing"})
	authRepo.add(&auth.Auth{Email: "other@journal.org", PhoneNumber: "+15550001111"})

	_, err := svc.AssignEditor(context.Background(), j.ID, editorRequest())
	require.Error(t, err)

	status, _, code := journal.GetErrorResponse(err)
	assert.Equal(t, 409, status)
	assert.Equal(t, "EDITOR_PHONE_EXISTS", code)
	assert.Nil(t, j.EditorID)
}

func TestAssignEditor_JournalMissing(t *testing.T) {
	svc := NewJournalService(newFakeJournalRepo(), newFakeAuthRepo())

	_, err := svc.AssignEditor(context.Background(), primitive.NewObjectID(), editorRequest())
	require.Error(t, err)

	status, _, _ := journal.GetErrorResponse(err)
	assert.Equal(t, 404, status)
}

// ============================================
// DELETE / REMOVE EDITOR
// ============================================

func TestDelete_CascadesToEditorIdentity(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	editor := authRepo.add(&auth.Auth{Email: "dana@journal.org", IsEditor: true})
	j := journalRepo.add(&journal.Journal{Title: "Applied Computing", EditorID: &editor.ID})

	require.NoError(t, svc.Delete(context.Background(), j.ID))

	assert.Empty(t, journalRepo.journals)
	assert.Empty(t, authRepo.records)
	assert.Equal(t, []primitive.ObjectID{editor.ID}, authRepo.deleted)
}

func TestDelete_NoEditorNoCascade(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	j := journalRepo.add(&journal.Journal{Title: "Applied Computing"})

	require.NoError(t, svc.Delete(context.Background(), j.ID))
	assert.Empty(t, authRepo.deleted)
}

func TestDelete_MissingJournal(t *testing.T) {
	svc := NewJournalService(newFakeJournalRepo(), newFakeAuthRepo())

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	require.Error(t, err)

	status, _, _ := journal.GetErrorResponse(err)
	assert.Equal(t, 404, status)
}

func TestRemoveEditor_DeletesIdentityAndClearsLink(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	editor := authRepo.add(&auth.Auth{Email: "dana@journal.org", IsEditor: true})
	j := journalRepo.add(&journal.Journal{Title: "Applied Computing", EditorID: &editor.ID})

	require.NoError(t, svc.RemoveEditor(context.Background(), j.ID))

	assert.Nil(t, j.EditorID)
	assert.Empty(t, authRepo.records)
}

func TestRemoveEditor_NoEditorAssigned(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	svc := NewJournalService(journalRepo, newFakeAuthRepo())

	j := journalRepo.add(&journal.Journal{Title: "Applied Computing"})

	err := svc.RemoveEditor(context.Background(), j.ID)
	require.Error(t, err)

	status, _, code := journal.GetErrorResponse(err)
	assert.Equal(t, 404, status)
	assert.Equal(t, "NO_EDITOR_ASSIGNED", code)
}

// ============================================
// LIST
// ============================================

func TestList_ExpandsEditorIdentity(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	authRepo := newFakeAuthRepo()
	svc := NewJournalService(journalRepo, authRepo)

	editor := authRepo.add(&auth.Auth{
		FirstName: "Dana",
		Email:     "dana@journal.org",
		IsEditor:  true,
	})
	journalRepo.add(&journal.Journal{Title: "With Editor", EditorID: &editor.ID})
	journalRepo.add(&journal.Journal{Title: "Without Editor"})

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.NotNil(t, result[0].EditorID)
	assert.Equal(t, editor.ID.Hex(), *result[0].EditorID)
	require.NotNil(t, result[0].Editor)
	assert.Equal(t, "dana@journal.org", result[0].Editor.Email)

	assert.Nil(t, result[1].EditorID)
	assert.Nil(t, result[1].Editor)
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := NewJournalService(newFakeJournalRepo(), newFakeAuthRepo())

	_, err := svc.Create(context.Background(), journal.CreateRequest{})
	require.Error(t, err)

	status, _, _ := journal.GetErrorResponse(err)
	assert.Equal(t, 400, status)
}
