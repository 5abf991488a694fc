package notification

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SendMailRequest is one outbound notification. Body is HTML.
type SendMailRequest struct {
	FromLabel string `json:"fromLabel"`
	To        string `json:"to" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	HTMLBody  string `json:"htmlBody" binding:"required"`
}

func (r SendMailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.To,
			validation.Required.Error("recipient is required"),
			is.Email.Error("invalid recipient address"),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("subject is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.HTMLBody, validation.Required.Error("htmlBody is required")),
	)
}
