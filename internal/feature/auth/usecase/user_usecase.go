package usecase

import (
	"context"
	"fmt"
	"strings"

	"url_shortener/internal/feature/auth/domain/entity"
	"url_shortener/internal/shared/apperr"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyUsername is returned when a username is blank.
	ErrEmptyUsername = apperr.New(apperr.ErrValidation, "Username must not be empty.")

	// ErrEmptyPassword is returned when a password is blank at registration.
	ErrEmptyPassword = apperr.New(apperr.ErrValidation, "Password must not be empty.")
)

// userUsecase implements registration and self-service account management.
type userUsecase struct {
	users UserRepository
	cost  int
}

// NewUserUsecase creates a new userUsecase hashing passwords with bcrypt.DefaultCost.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{
		users: users,
		cost:  bcrypt.DefaultCost,
	}
}

// normalizeEmail makes email uniqueness case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *userUsecase) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Register creates a user with a bcrypt-hashed password.
// It returns ErrUserAlreadyExists when the username or email is taken.
func (u *userUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	emailTaken, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	usernameTaken, err := u.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if emailTaken || usernameTaken {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := u.hash(password)
	if err != nil {
		return nil, err
	}

	// The repository still maps a unique violation to ErrUserAlreadyExists
	// for registrations racing past the checks above.
	user := &entity.User{Username: username, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update changes the email and/or password of the user.
// Empty values leave the corresponding field untouched; with nothing to
// change the current user is returned as stored.
func (u *userUsecase) Update(ctx context.Context, userID uint, email, password string) (*entity.User, error) {
	var newEmail, newHash *string

	if e := normalizeEmail(email); e != "" {
		newEmail = &e
	}
	if password != "" {
		hashed, err := u.hash(password)
		if err != nil {
			return nil, err
		}
		newHash = &hashed
	}

	if newEmail == nil && newHash == nil {
		return u.users.FindByID(ctx, userID)
	}
	return u.users.Update(ctx, userID, newEmail, newHash)
}

// Delete removes the user and every link the user owns.
func (u *userUsecase) Delete(ctx context.Context, userID uint) error {
	return u.users.Delete(ctx, userID)
}
