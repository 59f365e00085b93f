package usecase

import (
	"context"

	"url_shortener/internal/feature/links/domain/entity"
)

// mockLinkRepository is a mock implementation of the LinkRepository interface.
type mockLinkRepository struct {
	CreateFunc          func(ctx context.Context, link *entity.Link) error
	FindByShortCodeFunc func(ctx context.Context, code string) (*entity.Link, error)
	ListByOwnerFunc     func(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Link, error)
	UpdateFunc          func(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error)
	DeleteFunc          func(ctx context.Context, code string, ownerID uint) error
}

func (m *mockLinkRepository) Create(ctx context.Context, link *entity.Link) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, link)
	}
	return nil // Default: success
}

func (m *mockLinkRepository) FindByShortCode(ctx context.Context, code string) (*entity.Link, error) {
	if m.FindByShortCodeFunc != nil {
		return m.FindByShortCodeFunc(ctx, code)
	}
	return nil, ErrLinkNotFound
}

func (m *mockLinkRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Link, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, offset, limit)
	}
	return []entity.Link{}, nil
}

func (m *mockLinkRepository) Update(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, code, ownerID, longURL, description)
	}
	return nil, ErrLinkNotFound
}

func (m *mockLinkRepository) Delete(ctx context.Context, code string, ownerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code, ownerID)
	}
	return ErrLinkNotFound
}
