package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wramaba/felipe/internal/felipe/domain"
	"github.com/wramaba/felipe/internal/felipe/store"
	"github.com/wramaba/felipe/pkg/cryptox"
	"github.com/wramaba/felipe/pkg/idx"
)

var (
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Login never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInactiveUser = errors.New("inactive user")
)

type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Position string
	Fiscalia string
}

// Register creates a user with a salted password hash and returns the user
// together with a fresh access token. A duplicate email fails with
// ErrEmailTaken; uniqueness is enforced at write time by the store.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (domain.User, string, error) {
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        p.Email,
		PasswordHash: hash,
		FullName:     p.FullName,
		Position:     p.Position,
		Fiscalia:     p.Fiscalia,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	if !user.Active {
		return domain.User{}, "", ErrInactiveUser
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}
