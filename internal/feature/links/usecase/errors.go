// Package usecase implements the business logic for the links feature.
package usecase

import "url_shortener/internal/shared/apperr"

const (
	// MaxPageSize is the largest page ListByOwner will return.
	MaxPageSize = 100
	// DefaultPageSize is used when the caller gives no limit.
	DefaultPageSize = 10
)

var (
	// ErrLinkNotFound is returned when no link has the short code, or the
	// link belongs to someone else.
	ErrLinkNotFound = apperr.New(apperr.ErrNotFound, "URL not found.")

	// ErrShortCodeConflict is returned when the derived short code is already stored.
	ErrShortCodeConflict = apperr.New(apperr.ErrConflict, "Short URL already exists.")

	// ErrEmptyLongURL is returned when long_url is blank.
	ErrEmptyLongURL = apperr.New(apperr.ErrValidation, "long_url must not be empty.")

	// ErrInvalidSkip is returned for a negative pagination offset.
	ErrInvalidSkip = apperr.New(apperr.ErrValidation, "skip must be greater than or equal to 0.")

	// ErrInvalidLimit is returned for a page size outside 1..MaxPageSize.
	ErrInvalidLimit = apperr.New(apperr.ErrValidation, "limit must be between 1 and 100.")
)
