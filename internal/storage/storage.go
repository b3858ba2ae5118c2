// Package storage provides the key-value persistence used in place of
// browser local storage. Values are opaque strings; callers own the encoding.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrInvalidKey is returned for keys that cannot be stored
var ErrInvalidKey = errors.New("invalid storage key")

// Store is a string key-value store surviving process restarts.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value for key wholesale.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
