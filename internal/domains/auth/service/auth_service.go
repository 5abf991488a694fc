package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"journal-backend/internal/domains/auth"
	"journal-backend/pkg/jwt"
)

// authService implements auth.Service
type authService struct {
	repo       auth.Repository
	jwtManager *jwt.Manager
}

// NewAuthService creates the service instance.
// Repository injected through the container.
func NewAuthService(repo auth.Repository, jwtManager *jwt.Manager) auth.Service {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login verifies the generated credentials and issues an access token.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, auth.NewAuthStoreError("lookup", err)
	}
	if record == nil {
		// Do not reveal whether the username exists.
		return nil, auth.NewInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.NewInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(
		record.ID.Hex(),
		record.Email,
		record.Username,
		record.IsEditor,
		record.IsReviewer,
	)
	if err != nil {
		return nil, auth.NewAuthStoreError("token generation", err)
	}

	return &auth.LoginResponse{
		AccessToken: token,
		User:        record.ToDTO(),
	}, nil
}

// Me resolves the caller's identity record.
func (s *authService) Me(ctx context.Context, id primitive.ObjectID) (*auth.DTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, auth.NewAuthStoreError("lookup", err)
	}
	if record == nil {
		return nil, auth.NewAuthNotFound()
	}

	dto := record.ToDTO()
	return &dto, nil
}
