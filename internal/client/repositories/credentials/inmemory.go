package credentials

import (
	"context"
	"sync"
)

// InMemoryRepository keeps the credential fields in a map. Intended for
// tests and throwaway runs; nothing survives the process.
type InMemoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{values: make(map[string]string)}
}

func (r *InMemoryRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *InMemoryRepository) SetMany(ctx context.Context, pairs map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range pairs {
		r.values[key] = value
	}
	return nil
}

func (r *InMemoryRepository) Close() error {
	return nil
}
