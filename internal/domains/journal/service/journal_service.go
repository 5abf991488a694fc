package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"journal-backend/internal/domains/auth"
	"journal-backend/internal/domains/journal"
	"journal-backend/internal/shared/utils"
	"journal-backend/pkg/logger"
)

// usernameAttempts caps the uniqueness retry loop for generated
// usernames before giving up.
const usernameAttempts = 5

// journalService implements journal.Service.
// The editor lifecycle spans two stores (journal + auth); the steps are
// sequential and not transactional, matching the document store's
// native guarantees.
type journalService struct {
	repo     journal.Repository
	authRepo auth.Repository
}

func NewJournalService(repo journal.Repository, authRepo auth.Repository) journal.Service {
	return &journalService{
		repo:     repo,
		authRepo: authRepo,
	}
}

func (s *journalService) Create(ctx context.Context, req journal.CreateRequest) (*journal.Journal, error) {
	if err := req.Validate(); err != nil {
		return nil, &journal.JournalError{
			Code:    "INVALID_JOURNAL",
			Message: err.Error(),
			Status:  400,
		}
	}

	j := &journal.Journal{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, journal.NewJournalStoreError("create", err)
	}
	return j, nil
}

// List returns all journals with the editor identity expanded and the
// raw editorId normalized to its hex form or null.
func (s *journalService) List(ctx context.Context) ([]*journal.WithEditor, error) {
	journals, err := s.repo.List(ctx)
	if err != nil {
		return nil, journal.NewJournalStoreError("list", err)
	}

	results := make([]*journal.WithEditor, 0, len(journals))
	for _, j := range journals {
		entry := &journal.WithEditor{
			ID:          j.ID.Hex(),
			Title:       j.Title,
			Description: j.Description,
			CreatedAt:   j.CreatedAt,
		}

		if j.EditorID != nil {
			hex := j.EditorID.Hex()
			entry.EditorID = &hex

			editor, err := s.authRepo.FindByID(ctx, *j.EditorID)
			if err != nil {
				return nil, journal.NewJournalStoreError("editor lookup", err)
			}
			if editor != nil {
				dto := editor.ToDTO()
				entry.Editor = &dto
			}
		}

		results = append(results, entry)
	}

	return results, nil
}

// Delete removes the journal and cascades to the editor's Auth record.
func (s *journalService) Delete(ctx context.Context, id primitive.ObjectID) error {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return journal.NewJournalStoreError("lookup", err)
	}
	if j == nil {
		return journal.NewJournalNotFound()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if j.EditorID != nil {
		if err := s.authRepo.Delete(ctx, *j.EditorID); err != nil {
			// Journal is already gone; the orphaned identity is logged
			// for manual reconciliation rather than rolled back.
			logger.Error("Failed to cascade-delete journal editor", err)
		}
	}

	return nil
}

// AssignEditor provisions a new Auth identity with isEditor=true and
// links it to the journal. The generated plaintext password is returned
// exactly once.
func (s *journalService) AssignEditor(ctx context.Context, journalID primitive.ObjectID, req journal.AssignEditorRequest) (*journal.AssignEditorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &journal.JournalError{
			Code:    "INVALID_EDITOR",
			Message: err.Error(),
			Status:  400,
		}
	}

	j, err := s.repo.FindByID(ctx, journalID)
	if err != nil {
		return nil, journal.NewJournalStoreError("lookup", err)
	}
	if j == nil {
		return nil, journal.NewJournalNotFound()
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNumber)

	// Uniqueness checks before any identity record exists: a conflict
	// must leave nothing behind.
	if exists, err := s.authRepo.ExistsByEmail(ctx, email); err != nil {
		return nil, journal.NewJournalStoreError("email check", err)
	} else if exists {
		return nil, journal.NewEditorEmailExists(email)
	}

	if exists, err := s.authRepo.ExistsByPhone(ctx, phone); err != nil {
		return nil, journal.NewJournalStoreError("phone check", err)
	} else if exists {
		return nil, journal.NewEditorPhoneExists(phone)
	}

	password, err := utils.GeneratePassword()
	if err != nil {
		return nil, journal.NewCredentialGenerationError(err)
	}

	username, err := s.uniqueUsername(ctx, req.FirstName)
	if err != nil {
		return nil, journal.NewCredentialGenerationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, journal.NewCredentialGenerationError(err)
	}

	editor := &auth.Auth{
		FirstName:    strings.TrimSpace(req.FirstName),
		MiddleName:   strings.TrimSpace(req.MiddleName),
		LastName:     strings.TrimSpace(req.LastName),
		Username:     username,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Gender:       req.Gender,
		IsEditor:     true,
	}

	if err := s.authRepo.Create(ctx, editor); err != nil {
		return nil, journal.NewJournalStoreError("editor create", err)
	}

	if err := s.repo.SetEditor(ctx, journalID, &editor.ID); err != nil {
		// The identity exists but the link failed; surfaced as an error
		// and left for manual reconciliation.
		return nil, err
	}

	return &journal.AssignEditorResponse{
		JournalID: journalID.Hex(),
		Username:  username,
		Password:  password,
		Editor:    editor.ToDTO(),
	}, nil
}

// uniqueUsername retries generation until the store reports no collision.
func (s *journalService) uniqueUsername(ctx context.Context, firstName string) (string, error) {
	for i := 0; i < usernameAttempts; i++ {
		candidate, err := utils.GenerateUsername(firstName)
		if err != nil {
			return "", err
		}

		taken, err := s.authRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", &journal.JournalError{
		Code:    "USERNAME_EXHAUSTED",
		Message: "Could not generate a unique username",
		Status:  500,
	}
}

// RemoveEditor deletes the linked Auth record and clears the reference.
func (s *journalService) RemoveEditor(ctx context.Context, journalID primitive.ObjectID) error {
	j, err := s.repo.FindByID(ctx, journalID)
	if err != nil {
		return journal.NewJournalStoreError("lookup", err)
	}
	if j == nil {
		return journal.NewJournalNotFound()
	}
	if j.EditorID == nil {
		return journal.NewNoEditorAssigned()
	}

	if err := s.authRepo.Delete(ctx, *j.EditorID); err != nil {
		return journal.NewJournalStoreError("editor delete", err)
	}

	return s.repo.SetEditor(ctx, journalID, nil)
}
