package users

import (
	"context"

	"github.com/abertrand/vitrine/internal/models"
)

// Update carries the fields of a profile update. Nil fields are left
// untouched; set fields replace the stored value.
type Update struct {
	Username *string
	Password *string
}

// Repository describes the operations over the persisted user list.
// Implementations seed the bundled default dataset on first load.
type Repository interface {
	// Register appends a new account. Fails with apperrors.ErrDuplicateEmail
	// when the email is already present (case-sensitive match).
	Register(ctx context.Context, email, username, password string) error

	// Authenticate returns the first record matching email and password
	// exactly, or apperrors.ErrInvalidCredentials. No distinction is made
	// between an unknown email and a wrong password.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// Update merges the given fields into the record with the given email,
	// persists, and returns the merged record. Fails with
	// apperrors.ErrUserNotFound when no record matches.
	Update(ctx context.Context, email string, update Update) (*models.User, error)
}
