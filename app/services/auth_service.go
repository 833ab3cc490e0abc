package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/auth"
	"github.com/shashiranjanraj/foodcourt/pkg/validate"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// UserAccounts is the persistence surface AuthService needs.
type UserAccounts interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthService registers accounts and issues session tokens.
type AuthService struct {
	users  UserAccounts
	tokens *auth.Tokens
}

func NewAuthService(users UserAccounts, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account and returns a session token for it.
// The checks run in a fixed order: duplicate email, email shape, then
// password strength, so a taken address is reported even when the rest
// of the input is also bad.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrDuplicateUser
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	if !validate.Email(email) {
		return "", ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		CartData: map[string]int64{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Generate(user.ID.Hex())
}

// Login checks credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID.Hex())
}
