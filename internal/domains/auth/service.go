package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is the business logic contract for the auth domain.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, id primitive.ObjectID) (*DTO, error)
}
