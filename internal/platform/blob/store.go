// Package blob persists each client-side store as one JSON document under a
// single Redis key, the way browsers keep one localStorage entry per store.
package blob

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes one JSON blob per key.
type Store struct {
	client *redis.Client
}

// New constructs a Store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load unmarshals the blob at key into dest. A missing key or a corrupt blob
// leaves dest untouched and reports ok=false; persisted-state trouble is
// treated as empty state, never as a failure.
func (s *Store) Load(ctx context.Context, key string, dest any) bool {
	if s == nil || s.client == nil {
		return false
	}
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	return true
}

// Save marshals value and writes it under key with no expiry.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	if s == nil || s.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// Delete removes the blob at key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return nil
	}
	err := s.client.Del(ctx, key).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
