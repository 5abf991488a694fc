package journal

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"journal-backend/internal/domains/auth"
)

// CreateRequest creates a journal with no editor assigned.
type CreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

// AssignEditorRequest provisions a new editor identity for a journal.
type AssignEditorRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Gender      string `json:"gender"`
}

func (r AssignEditorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.PhoneNumber,
			validation.Required.Error("phone number is required"),
			validation.Length(7, 20),
		),
	)
}

// AssignEditorResponse discloses the generated credentials exactly once;
// they are not retrievable afterwards.
type AssignEditorResponse struct {
	JournalID string   `json:"journalId"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Editor    auth.DTO `json:"editor"`
}
