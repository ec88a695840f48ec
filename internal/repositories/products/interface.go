package products

import (
	"context"

	"github.com/abertrand/vitrine/internal/models"
)

// Update carries the mutable fields of a product. Nil fields are left
// untouched. The id is never updatable.
type Update struct {
	Name        *string
	Description *string
	Category    *string
	Seller      *string
	Image       *string
	Price       *float64
	Stock       *int
	IsActive    *bool
}

// Repository describes the operations over the persisted product list.
// Implementations seed the bundled default dataset on first load.
type Repository interface {
	// Add assigns a fresh id and creation stamps, appends the product, and
	// returns the stored record. Price and stock are validated defensively.
	Add(ctx context.Context, p models.Product) (*models.Product, error)

	// Update merges the set fields into the record with the given id and
	// returns the merged record. Fails with apperrors.ErrProductNotFound
	// when the id is absent.
	Update(ctx context.Context, id string, update Update) (*models.Product, error)

	// Delete removes the record with the given id if present. Deleting an
	// absent id is not an error.
	Delete(ctx context.Context, id string) error

	// GetAll returns the full list.
	GetAll(ctx context.Context) ([]models.Product, error)

	// Search returns all records whose name, description, category, or
	// seller contains the query, case-insensitively. An empty query matches
	// everything.
	Search(ctx context.Context, query string) ([]models.Product, error)
}
