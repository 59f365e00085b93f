package usecase

import (
	"context"
	"strings"

	"url_shortener/internal/feature/links/domain/entity"
	"url_shortener/internal/feature/links/domain/shortcode"
)

// linkUsecase implements creation, lookup and owner-scoped management of links.
type linkUsecase struct {
	links LinkRepository
	codes shortcode.Generator
}

// NewLinkUsecase creates a new linkUsecase deriving short codes with codes.
func NewLinkUsecase(links LinkRepository, codes shortcode.Generator) *linkUsecase {
	return &linkUsecase{
		links: links,
		codes: codes,
	}
}

// Create shortens longURL on behalf of ownerID.
// The short code is a pure function of longURL, so shortening the same URL
// twice yields ErrShortCodeConflict.
func (u *linkUsecase) Create(ctx context.Context, ownerID uint, longURL string, description *string) (*entity.Link, error) {
	if strings.TrimSpace(longURL) == "" {
		return nil, ErrEmptyLongURL
	}

	link := &entity.Link{
		LongURL:     longURL,
		ShortURL:    u.codes.Generate(longURL),
		Description: description,
		UserID:      ownerID,
	}
	if err := u.links.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// Get returns the link for code, regardless of owner.
func (u *linkUsecase) Get(ctx context.Context, code string) (*entity.Link, error) {
	return u.links.FindByShortCode(ctx, code)
}

// List returns one page of the owner's links.
func (u *linkUsecase) List(ctx context.Context, ownerID uint, skip, limit int) ([]entity.Link, error) {
	if skip < 0 {
		return nil, ErrInvalidSkip
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, ErrInvalidLimit
	}
	return u.links.ListByOwner(ctx, ownerID, skip, limit)
}

// Update changes the destination and/or description of an owned link.
// The short code is kept even when the long URL changes.
func (u *linkUsecase) Update(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error) {
	if longURL != nil && strings.TrimSpace(*longURL) == "" {
		return nil, ErrEmptyLongURL
	}
	return u.links.Update(ctx, code, ownerID, longURL, description)
}

// Delete removes an owned link.
func (u *linkUsecase) Delete(ctx context.Context, code string, ownerID uint) error {
	return u.links.Delete(ctx, code, ownerID)
}
