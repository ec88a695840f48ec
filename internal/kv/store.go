// Package kv implements the string-keyed durable blob store that backs every
// persisted collection. Collections are whole JSON arrays stored under a
// single key; callers do read-modify-write with no atomicity guarantee,
// which is acceptable for this single-writer client.
package kv

import "context"

// Collection keys used by the application.
const (
	KeyUsers    = "users"
	KeyProducts = "products"
	KeySession  = "session_user"
)

// Store describes the asynchronous key-value contract.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
