// Package adapters provides repository implementations for the links feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"url_shortener/internal/feature/links/domain/entity"
	"url_shortener/internal/feature/links/usecase"
	platformdb "url_shortener/internal/platform/db"
)

// ownedBy is the combined predicate used by every owner-scoped mutation.
const ownedBy = "short_url = ? AND user_id = ?"

// linkGorm is a GORM implementation of the LinkRepository interface.
type linkGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure linkGorm implements LinkRepository.
var _ usecase.LinkRepository = (*linkGorm)(nil)

// NewLinkGorm creates a new linkGorm backed by db.
func NewLinkGorm(db *gorm.DB) *linkGorm {
	return &linkGorm{db: db}
}

// Create inserts the link. Duplicate short codes are detected from the
// unique index rather than a prior read.
func (r *linkGorm) Create(ctx context.Context, link *entity.Link) error {
	if link == nil {
		return errors.New("link is nil")
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if platformdb.IsUniqueViolation(err) {
			return usecase.ErrShortCodeConflict
		}
		return err
	}
	return nil
}

func (r *linkGorm) FindByShortCode(ctx context.Context, code string) (*entity.Link, error) {
	var link entity.Link
	if err := r.db.WithContext(ctx).Where("short_url = ?", code).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// ListByOwner returns at most limit links starting at offset, oldest first.
func (r *linkGorm) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Link, error) {
	links := make([]entity.Link, 0, limit)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Update applies the non-nil fields in one transaction. A link owned by
// someone else is reported exactly like a missing one.
func (r *linkGorm) Update(ctx context.Context, code string, ownerID uint, longURL, description *string) (*entity.Link, error) {
	var link entity.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(ownedBy, code, ownerID).First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrLinkNotFound
			}
			return err
		}
		if longURL == nil && description == nil {
			return nil
		}
		if longURL != nil {
			link.LongURL = *longURL
		}
		if description != nil {
			link.Description = description
		}
		return tx.Save(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete removes the link only when it belongs to ownerID.
func (r *linkGorm) Delete(ctx context.Context, code string, ownerID uint) error {
	result := r.db.WithContext(ctx).Where(ownedBy, code, ownerID).Delete(&entity.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrLinkNotFound
	}
	return nil
}
