// Package usecase implements the business logic for the auth feature.
package usecase

import "url_shortener/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "User not found.")

	// ErrUserAlreadyExists is returned when the username or email is already registered.
	ErrUserAlreadyExists = apperr.New(apperr.ErrConflict, "Email or username already registered.")

	// ErrEmailAlreadyExists is returned when an update would reuse another user's email.
	ErrEmailAlreadyExists = apperr.New(apperr.ErrConflict, "Email already registered.")

	// ErrInvalidCredentials is returned when login fails for any reason.
	ErrInvalidCredentials = apperr.New(apperr.ErrAuthentication, "Invalid credentials.")

	// ErrNotAuthenticated is returned when a token subject no longer maps to a user.
	ErrNotAuthenticated = apperr.New(apperr.ErrAuthentication, "Could not validate credentials.")
)
