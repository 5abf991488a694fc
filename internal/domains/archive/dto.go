package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BuildRequest names the upload files to bundle.
type BuildRequest struct {
	FileNames []string `json:"fileNames" binding:"required"`
}

func (r BuildRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileNames,
			validation.Required.Error("fileNames are required"),
			validation.Each(validation.Required.Error("file names must not be empty")),
		),
	)
}

// BuildResponse returns the staged archive name. The file expires
// after the configured TTL whether or not it was downloaded.
type BuildResponse struct {
	FileName         string `json:"fileName"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}
