package state

import (
	"context"
	"io"
	"log/slog"

	"github.com/abertrand/vitrine/internal/kv"
	"github.com/abertrand/vitrine/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// failingStore wraps a kv.Store and fails selected operations, for
// exercising storage error paths.
type failingStore struct {
	kv.Store
	getErr    error
	setErr    error
	deleteErr error
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.Store.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Set(ctx, key, value)
}

func (s *failingStore) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.Store.Delete(ctx, key)
}
