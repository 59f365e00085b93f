// Package entity defines the domain entities for the links feature.
package entity

import authentity "url_shortener/internal/feature/auth/domain/entity"

// Link maps a short code to a long URL on behalf of its owner.
type Link struct {
	ID uint `gorm:"primaryKey"`

	// LongURL is stored as given; it is not validated as a URL.
	LongURL string `gorm:"column:long_url;size:2048;not null"`

	// ShortURL is the short code derived from LongURL at creation time.
	// It is unique across all links and never recomputed.
	ShortURL string `gorm:"column:short_url;uniqueIndex;size:50;not null"`

	Description *string `gorm:"size:400"`

	// UserID is the owner. Deleting the owner deletes the link.
	UserID uint             `gorm:"index;not null"`
	Owner  *authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM.
func (Link) TableName() string {
	return "urls"
}
