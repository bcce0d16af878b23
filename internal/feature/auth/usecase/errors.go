// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an
	// email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. The same error is
	// used for an unknown email and for a wrong password so callers cannot
	// probe which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
