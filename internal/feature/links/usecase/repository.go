package usecase

import (
	"context"

	"url_shortener/internal/feature/links/domain/entity"
)

// LinkRepository persists links.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type LinkRepository interface {
	// Create stores the link. It returns ErrShortCodeConflict when the short
	// code violates the unique constraint.
	Create(ctx context.Context, link *entity.Link) error

	// FindByShortCode returns ErrLinkNotFound if no link has the code.
	FindByShortCode(ctx context.Context, code string) (*entity.Link, error)

	// ListByOwner returns the owner's links ordered by ID.
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Link, error)

	// Update applies the non-nil fields to the link matching both code and
	// owner. It returns ErrLinkNotFound when there is no such link.
	Update(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error)

	// Delete removes the link matching both code and owner. It returns
	// ErrLinkNotFound when there is no such link.
	Delete(ctx context.Context, code string, ownerID uint) error
}
