package usecase

import (
	"context"

	"url_shortener/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user.
	// It returns ErrUserAlreadyExists if the username or email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername returns ErrUserNotFound if no user has the username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID returns ErrUserNotFound if no user has the ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update applies the non-nil fields to the user with the given ID.
	// It returns ErrUserNotFound if the user is gone and ErrEmailAlreadyExists
	// if the email belongs to someone else.
	Update(ctx context.Context, id uint, email, passwordHash *string) (*entity.User, error)

	// Delete removes the user together with every link the user owns.
	// It returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uint) error
}
