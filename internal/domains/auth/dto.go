package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest authenticates with the generated username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse carries the access token plus the safe identity projection.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        DTO    `json:"user"`
}
