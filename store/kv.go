// Package store owns the product, sale and expense collections and mirrors
// every change to a key-value persistence port.
package store

import (
	"context"
	"sync"
)

// Persistence keys, one JSON array per collection.
const (
	KeyProducts = "connectfit_products"
	KeySales    = "connectfit_sales"
	KeyExpenses = "connectfit_expenses"
)

// KV is the persistence substrate. Get reports ok=false for an absent key.
// Set replaces the value unconditionally.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is a map-backed KV used for tests and ephemeral runs.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
