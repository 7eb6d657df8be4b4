package storage

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStorage keeps entries in process memory. Entries are lost on restart.
type MemoryStorage struct {
	items *cache.Cache
}

func NewMemoryStorage(defaultTTL time.Duration) *MemoryStorage {
	if defaultTTL <= 0 {
		defaultTTL = cache.NoExpiration
	}
	return &MemoryStorage{items: cache.New(defaultTTL, 10*time.Minute)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	m.items.Set(key, value, ttl)
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.items.Delete(k)
	}
	return nil
}

// Len reports the number of live entries.
func (m *MemoryStorage) Len() int {
	return m.items.ItemCount()
}
