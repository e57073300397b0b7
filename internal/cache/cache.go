package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface for transient collaborator output
// (search results, fetched pages). Verdicts themselves are never
// persisted.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from an arbitrary input string.
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "veridique:v1:" + hex.EncodeToString(hash[:])
}
