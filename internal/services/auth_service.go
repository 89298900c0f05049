package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"capitaluy-backend/internal/auth"
	"capitaluy-backend/internal/models"
	"capitaluy-backend/internal/repositories"
	"capitaluy-backend/internal/store"
	"capitaluy-backend/internal/timeutil"
)

// AuthService checks admin credentials and issues session tokens.
type AuthService struct {
	Repo     *repositories.AdminAccountRepository
	Sessions *auth.SessionManager

	// Fallback pair accepted while no account is stored
	FallbackUsername string
	FallbackPassword string
}

func NewAuthService(repo *repositories.AdminAccountRepository, sessions *auth.SessionManager, username, password string) *AuthService {
	return &AuthService{
		Repo:             repo,
		Sessions:         sessions,
		FallbackUsername: username,
		FallbackPassword: password,
	}
}

// Login returns a signed session token and its expiry.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	account, err := s.Repo.Get(ctx)
	switch {
	case err == nil:
		if username != account.Username || !auth.VerifyPassword(account.PasswordHash, password) {
			return "", time.Time{}, ErrInvalidCredentials
		}
	case errors.Is(err, store.ErrNotFound):
		if s.FallbackUsername == "" ||
			!auth.ConstantTimeEqual(username, s.FallbackUsername) ||
			!auth.ConstantTimeEqual(password, s.FallbackPassword) {
			return "", time.Time{}, ErrInvalidCredentials
		}
	default:
		return "", time.Time{}, fmt.Errorf("load admin account: %w", err)
	}

	token, expiresAt, err := s.Sessions.Issue(username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session: %w", err)
	}

	zap.S().Infow("[Auth] admin login", "username", username)
	return token, expiresAt, nil
}

// CreateAccount stores the admin credential. Replacing an existing account
// requires an authenticated caller.
func (s *AuthService) CreateAccount(ctx context.Context, username, password string, authenticated bool) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	_, err := s.Repo.Get(ctx)
	switch {
	case err == nil:
		if !authenticated {
			return ErrAccountExists
		}
	case errors.Is(err, store.ErrNotFound):
	default:
		return fmt.Errorf("load admin account: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account := &models.AdminAccount{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    timeutil.Now(),
	}
	if err := s.Repo.Save(ctx, account); err != nil {
		return err
	}

	zap.S().Infow("[Auth] admin account saved", "username", username)
	return nil
}
