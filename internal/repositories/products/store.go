package products

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/abertrand/vitrine/internal/apperrors"
	"github.com/abertrand/vitrine/internal/kv"
	"github.com/abertrand/vitrine/internal/logging"
	"github.com/abertrand/vitrine/internal/models"
	"github.com/abertrand/vitrine/internal/query"
	"github.com/abertrand/vitrine/internal/seed"
)

// KVRepository implements Repository over the key-value store, holding the
// whole product list as one JSON array under kv.KeyProducts.
type KVRepository struct {
	store kv.Store
	log   logging.Logger

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time

	// id generation state. Ids stay timestamp-derived; a sequence suffix
	// disambiguates creations landing in the same millisecond.
	idMu      sync.Mutex
	lastMilli int64
	seq       int
}

// NewKVRepository returns a KVRepository bound to the given store.
func NewKVRepository(store kv.Store, log logging.Logger) *KVRepository {
	return &KVRepository{store: store, log: log, now: time.Now}
}

// nextID returns a fresh timestamp-derived id.
func (r *KVRepository) nextID() string {
	r.idMu.Lock()
	defer r.idMu.Unlock()

	milli := r.now().UnixMilli()
	if milli == r.lastMilli {
		r.seq++
		return strconv.FormatInt(milli, 10) + "-" + strconv.Itoa(r.seq)
	}
	r.lastMilli = milli
	r.seq = 0
	return strconv.FormatInt(milli, 10)
}

// load reads the product list, seeding the bundled defaults on first access.
func (r *KVRepository) load(ctx context.Context) ([]models.Product, error) {
	data, err := r.store.Get(ctx, kv.KeyProducts)
	if err != nil {
		return nil, err
	}
	if data == nil {
		products := seed.Products()
		if err := r.save(ctx, products); err != nil {
			return nil, err
		}
		r.log.Info(ctx, "collection seeded", "key", kv.KeyProducts, "records", len(products))
		return products, nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: failed to decode product list: %v", apperrors.ErrStorage, err)
	}
	return products, nil
}

func (r *KVRepository) save(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%w: failed to encode product list: %v", apperrors.ErrStorage, err)
	}
	return r.store.Set(ctx, kv.KeyProducts, data)
}

func (r *KVRepository) Add(ctx context.Context, p models.Product) (*models.Product, error) {
	if p.Price <= 0 {
		return nil, apperrors.ErrInvalidPrice
	}
	if p.Stock < 0 {
		return nil, apperrors.ErrInvalidStock
	}

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC().Format(time.RFC3339)
	p.ID = r.nextID()
	p.CreatedAt = now
	p.UpdatedAt = now

	products = append(products, p)
	if err := r.save(ctx, products); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *KVRepository) Update(ctx context.Context, id string, update Update) (*models.Product, error) {
	if update.Price != nil && *update.Price <= 0 {
		return nil, apperrors.ErrInvalidPrice
	}
	if update.Stock != nil && *update.Stock < 0 {
		return nil, apperrors.ErrInvalidStock
	}

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		apply(&products[i], update)
		products[i].UpdatedAt = r.now().UTC().Format(time.RFC3339)

		if err := r.save(ctx, products); err != nil {
			return nil, err
		}
		merged := products[i]
		return &merged, nil
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrProductNotFound, id)
}

func apply(p *models.Product, update Update) {
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Seller != nil {
		p.Seller = *update.Seller
	}
	if update.Image != nil {
		p.Image = *update.Image
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}
	if update.IsActive != nil {
		p.IsActive = *update.IsActive
	}
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.save(ctx, kept)
}

func (r *KVRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.load(ctx)
}

func (r *KVRepository) Search(ctx context.Context, q string) ([]models.Product, error) {
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query.MatchesText(p, q) {
			result = append(result, p)
		}
	}
	return result, nil
}
