package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"url_shortener/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the user does not exist so that
// unknown usernames and wrong passwords take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// TokenGenerator issues signed access tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken returns a signed token whose subject is username.
	GenerateToken(username string) (string, error)
}

// authUsecase implements login and token-subject resolution.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// Login verifies the username and password and returns a signed access token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	// Usernames are stored trimmed at registration.
	user, err := u.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}

	// Always compare, even for unknown users.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ResolveUser returns the user named by a validated token subject.
// A subject that no longer exists yields ErrNotAuthenticated.
func (u *authUsecase) ResolveUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return user, nil
}
