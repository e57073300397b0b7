package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache with per-entry TTL.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache. A zero defaultTTL means entries
// never expire unless a TTL is passed on Set.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value.
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value.
func (m *Memory) Delete(key string) error {
	m.cache.Delete(key)
	return nil
}

// Clear drops every entry.
func (m *Memory) Clear() error {
	m.cache.Flush()
	return nil
}
