package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abertrand/vitrine/internal/apperrors"
	"github.com/abertrand/vitrine/internal/kv"
	"github.com/abertrand/vitrine/internal/logging"
	"github.com/abertrand/vitrine/internal/models"
	"github.com/abertrand/vitrine/internal/seed"
)

// KVRepository implements Repository over the key-value store, holding the
// whole user list as one JSON array under kv.KeyUsers.
type KVRepository struct {
	store kv.Store
	log   logging.Logger

	// newID is a seam for tests; defaults to uuid.NewString.
	newID func() string
}

// NewKVRepository returns a KVRepository bound to the given store.
func NewKVRepository(store kv.Store, log logging.Logger) *KVRepository {
	return &KVRepository{store: store, log: log, newID: uuid.NewString}
}

// load reads the user list, seeding the bundled defaults on first access.
func (r *KVRepository) load(ctx context.Context) ([]models.User, error) {
	data, err := r.store.Get(ctx, kv.KeyUsers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		users := seed.Users()
		if err := r.save(ctx, users); err != nil {
			return nil, err
		}
		r.log.Info(ctx, "collection seeded", "key", kv.KeyUsers, "records", len(users))
		return users, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: failed to decode user list: %v", apperrors.ErrStorage, err)
	}
	return users, nil
}

func (r *KVRepository) save(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: failed to encode user list: %v", apperrors.ErrStorage, err)
	}
	return r.store.Set(ctx, kv.KeyUsers, data)
}

func (r *KVRepository) Register(ctx context.Context, email, username, password string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateEmail, email)
		}
	}

	users = append(users, models.User{
		ID:       r.newID(),
		Email:    email,
		Username: username,
		Password: password,
	})
	return r.save(ctx, users)
}

func (r *KVRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	// Plaintext comparison, per the documented reference behavior.
	for _, u := range users {
		if u.Email == email && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrInvalidCredentials
}

func (r *KVRepository) Update(ctx context.Context, email string, update Update) (*models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email != email {
			continue
		}
		if update.Username != nil {
			users[i].Username = *update.Username
		}
		if update.Password != nil {
			users[i].Password = *update.Password
		}
		if err := r.save(ctx, users); err != nil {
			return nil, err
		}
		merged := users[i]
		return &merged, nil
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrUserNotFound, email)
}
