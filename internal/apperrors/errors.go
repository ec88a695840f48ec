// Package apperrors defines the sentinel errors raised by the service layer
// and the normalized error type consumed by the UI. Callers match sentinels
// with errors.Is.
package apperrors

import "errors"

var (
	// User store errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Product store errors.
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidStock    = errors.New("stock must not be negative")

	// State machine errors.
	ErrNoUserLoggedIn = errors.New("no user logged in")

	// Storage adapter errors. Repository failures wrap this sentinel so the
	// normalizer can classify them without inspecting message text.
	ErrStorage = errors.New("storage error")
)
