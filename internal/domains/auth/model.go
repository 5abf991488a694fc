package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the mongo collection backing this domain.
const Collection = "auths"

// Auth is an identity record. It is created directly when an editor is
// provisioned; reviewer registration only flips IsReviewer on an
// existing record.
type Auth struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	MiddleName   string             `bson:"middleName,omitempty" json:"middleName,omitempty"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string             `bson:"password" json:"-"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	IsEditor     bool               `bson:"isEditor" json:"isEditor"`
	IsReviewer   bool               `bson:"isReviewer" json:"isReviewer"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DTO is the safe projection of an Auth record (no password hash).
type DTO struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	MiddleName  string    `json:"middleName,omitempty"`
	LastName    string    `json:"lastName"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Gender      string    `json:"gender,omitempty"`
	IsEditor    bool      `json:"isEditor"`
	IsReviewer  bool      `json:"isReviewer"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (a *Auth) ToDTO() DTO {
	return DTO{
		ID:          a.ID.Hex(),
		FirstName:   a.FirstName,
		MiddleName:  a.MiddleName,
		LastName:    a.LastName,
		Username:    a.Username,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Gender:      a.Gender,
		IsEditor:    a.IsEditor,
		IsReviewer:  a.IsReviewer,
		CreatedAt:   a.CreatedAt,
	}
}
