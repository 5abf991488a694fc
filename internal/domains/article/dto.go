package article

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitRequest is the decoded multipart submission. Keywords and
// authors arrive as JSON-encoded arrays; the handler decodes them
// before validation.
type SubmitRequest struct {
	UserID    string   `json:"userId"`
	Title     string   `json:"title"`
	Abstract  string   `json:"abstract"`
	Keywords  []string `json:"keywords"`
	Authors   []Author `json:"authors"`
	JournalID string   `json:"journalId"`
	FileRef   string   `json:"fileRef"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required.Error("userId is required")),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Abstract,
			validation.Required.Error("abstract is required"),
			validation.Length(1, 5000),
		),
		validation.Field(&r.Keywords, validation.Required.Error("keywords are required")),
		validation.Field(&r.Authors, validation.Required.Error("authors are required")),
		validation.Field(&r.JournalID, validation.Required.Error("journalId is required")),
		validation.Field(&r.FileRef, validation.Required.Error("manuscript file is required")),
	)
}

func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Email,
			validation.Required.Error("author email is required"),
			is.Email.Error("invalid author email"),
		),
	)
}

// UpdateRequest replaces the mutable fields of an article.
type UpdateRequest struct {
	Title     string        `json:"title" binding:"required"`
	Abstract  string        `json:"abstract" binding:"required"`
	Keywords  []string      `json:"keywords" binding:"required"`
	Authors   []Author      `json:"authors" binding:"required"`
	JournalID string        `json:"journalId" binding:"required"`
	Reviewers []ReviewEntry `json:"reviewers"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Abstract, validation.Required.Error("abstract is required")),
		validation.Field(&r.Keywords, validation.Required.Error("keywords are required")),
		validation.Field(&r.Authors, validation.Required.Error("authors are required")),
		validation.Field(&r.JournalID, validation.Required.Error("journalId is required")),
	)
}

// ReviewPatch replaces a single reviewer entry on an article.
type ReviewPatch struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

func (r ReviewPatch) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("reviewer email is required"),
			is.Email.Error("invalid reviewer email"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(ReviewPending, ReviewAccepted, ReviewRejected).
				Error("status must be pending, accepted or rejected"),
		),
	)
}

// AssignReviewersRequest attaches roster reviewers to an article.
type AssignReviewersRequest struct {
	ReviewerIDs []string `json:"reviewerIds" binding:"required"`
}

func (r AssignReviewersRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReviewerIDs, validation.Required.Error("reviewerIds are required")),
	)
}
