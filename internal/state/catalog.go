package state

import (
	"context"
	"errors"
	"time"

	"github.com/abertrand/vitrine/internal/apperrors"
	"github.com/abertrand/vitrine/internal/logging"
	"github.com/abertrand/vitrine/internal/models"
	"github.com/abertrand/vitrine/internal/repositories/products"
)

// CatalogSnapshot is what the UI reads: the in-memory product collection,
// a spinner flag, and the last normalized error.
type CatalogSnapshot struct {
	Products  []models.Product
	IsLoading bool
	Err       *apperrors.AppError
}

// AddInput carries the user-supplied fields of a new listing. New listings
// are always created active; id, timestamps, and ownership stamps are
// assigned by the store layers.
type AddInput struct {
	Name        string
	Description string
	Category    string
	Seller      string
	Image       string
	Price       float64
	Stock       int
}

// Catalog is the product collection store. Writes go through to the product
// repository first, then reconcile the in-memory collection.
type Catalog struct {
	repo products.Repository
	log  logging.Logger

	// current returns the session user used for ownership stamps; nil when
	// unauthenticated (stamps are then left empty, accepted client-side).
	current func() *models.SessionUser

	// fetchDelay simulates network latency on Fetch. Zero disables it.
	fetchDelay time.Duration

	state *emitter[CatalogSnapshot]
}

// NewCatalog returns an empty Catalog.
func NewCatalog(repo products.Repository, current func() *models.SessionUser, log logging.Logger, fetchDelay time.Duration) *Catalog {
	if current == nil {
		current = func() *models.SessionUser { return nil }
	}
	return &Catalog{
		repo:       repo,
		current:    current,
		log:        log,
		fetchDelay: fetchDelay,
		state:      newEmitter(CatalogSnapshot{}),
	}
}

// Snapshot returns the current state.
func (c *Catalog) Snapshot() CatalogSnapshot {
	return c.state.get()
}

// Subscribe registers fn to be called with every state change and returns
// the unsubscribe function.
func (c *Catalog) Subscribe(fn func(CatalogSnapshot)) func() {
	return c.state.subscribe(fn)
}

// Fetch reloads the whole collection from the repository, replacing the
// in-memory one. A failure sets the error state and keeps the previous
// collection.
func (c *Catalog) Fetch(ctx context.Context) {
	c.state.update(func(s *CatalogSnapshot) {
		s.IsLoading = true
		s.Err = nil
	})

	if c.fetchDelay > 0 {
		t := time.NewTimer(c.fetchDelay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			c.fail(ctx, ctx.Err())
			return
		}
	}

	list, err := c.repo.GetAll(ctx)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	c.state.update(func(s *CatalogSnapshot) {
		s.IsLoading = false
		s.Products = list
		s.Err = nil
	})
}

func (c *Catalog) fail(ctx context.Context, err error) {
	c.log.Error(ctx, "catalog operation failed", "error", err)
	appErr := apperrors.Normalize(err)
	c.state.update(func(s *CatalogSnapshot) {
		s.IsLoading = false
		s.Err = appErr
	})
}

// Add stamps ownership from the current session, writes through to the
// repository, and appends the stored record to the in-memory collection.
func (c *Catalog) Add(ctx context.Context, in AddInput) {
	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Seller:      in.Seller,
		Image:       in.Image,
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    true,
	}
	if u := c.current(); u != nil {
		p.CreatedBy = u.Email
		p.UserID = u.ID
	}

	stored, err := c.repo.Add(ctx, p)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	c.state.update(func(s *CatalogSnapshot) {
		next := make([]models.Product, 0, len(s.Products)+1)
		next = append(next, s.Products...)
		next = append(next, *stored)
		s.Products = next
		s.Err = nil
	})
}

// Update writes through to the repository and replaces the matching
// in-memory entry. A store-level not-found is best effort: logged, not
// surfaced to the UI.
func (c *Catalog) Update(ctx context.Context, id string, update products.Update) {
	stored, err := c.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			c.log.Warn(ctx, "update for unknown product", "id", id)
			return
		}
		c.fail(ctx, err)
		return
	}

	c.state.update(func(s *CatalogSnapshot) {
		next := make([]models.Product, len(s.Products))
		copy(next, s.Products)
		for i := range next {
			if next[i].ID == id {
				next[i] = *stored
			}
		}
		s.Products = next
		s.Err = nil
	})
}

// Delete writes through to the repository and removes the matching
// in-memory entry. Deleting an unknown id is a no-op.
func (c *Catalog) Delete(ctx context.Context, id string) {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.fail(ctx, err)
		return
	}

	c.state.update(func(s *CatalogSnapshot) {
		next := make([]models.Product, 0, len(s.Products))
		for _, p := range s.Products {
			if p.ID != id {
				next = append(next, p)
			}
		}
		s.Products = next
		s.Err = nil
	})
}

// Search round-trips through the repository so results reflect persisted
// state rather than the in-memory cache. A failure sets the error state and
// returns nil.
func (c *Catalog) Search(ctx context.Context, query string) []models.Product {
	list, err := c.repo.Search(ctx, query)
	if err != nil {
		c.fail(ctx, err)
		return nil
	}
	return list
}
