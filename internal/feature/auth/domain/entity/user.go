// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Username identifies the user at login and is the subject of issued tokens.
	// It must be unique across all users and is never changed.
	Username string `gorm:"column:user_name;uniqueIndex;size:100;not null" json:"user_name"`

	// Email is the user's email address, stored lower-cased.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:200;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
