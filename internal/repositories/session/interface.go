package session

import (
	"context"

	"github.com/abertrand/vitrine/internal/models"
)

// Repository describes the persisted current-session record.
type Repository interface {
	// Get returns the stored session user, or (nil, nil) when no session
	// is persisted.
	Get(ctx context.Context) (*models.SessionUser, error)

	// Set persists u as the current session, replacing any previous one.
	Set(ctx context.Context, u *models.SessionUser) error

	// Clear removes the persisted session. Clearing an absent session is
	// not an error.
	Clear(ctx context.Context) error
}
