// Package memory implements in-process storage for carts, used in development and tests.
package memory

import (
	"context"
	"sync"
)

// CartRepo keeps serialized carts in a map.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewCartRepo creates an empty repository.
func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string][]byte)}
}

// Load returns a copy of the stored value, or nil when the key is absent.
func (r *CartRepo) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.carts[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), data...), nil
}

// Save stores a copy of data under key.
func (r *CartRepo) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[key] = append([]byte(nil), data...)
	return nil
}

// Delete removes key.
func (r *CartRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, key)
	return nil
}
