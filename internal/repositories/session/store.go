package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abertrand/vitrine/internal/apperrors"
	"github.com/abertrand/vitrine/internal/kv"
	"github.com/abertrand/vitrine/internal/models"
)

// KVRepository implements Repository over the key-value store, holding the
// session user as one JSON record under kv.KeySession.
type KVRepository struct {
	store kv.Store
}

// NewKVRepository returns a KVRepository bound to the given store.
func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Get(ctx context.Context) (*models.SessionUser, error) {
	data, err := r.store.Get(ctx, kv.KeySession)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var u models.SessionUser
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%w: failed to decode session: %v", apperrors.ErrStorage, err)
	}
	return &u, nil
}

func (r *KVRepository) Set(ctx context.Context, u *models.SessionUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("%w: failed to encode session: %v", apperrors.ErrStorage, err)
	}
	return r.store.Set(ctx, kv.KeySession, data)
}

func (r *KVRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, kv.KeySession)
}
