package service

import (
	"context"

	"timesheet/apperror"
	"timesheet/models"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

type AuthService struct {
	users  *UserService
	tokens TokenIssuer
}

func NewAuthService(users *UserService, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", apperror.Internal("issue token", err)
	}
	return token, nil
}

// Register creates a regular, non-admin account.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	return s.users.Create(ctx, CreateUserInput{
		Email:    email,
		Password: password,
		Name:     name,
	})
}
