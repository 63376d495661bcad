package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists but has
// exceeded its time-to-live. The stale data stays on disk; callers should
// fetch fresh data and refresh the entry with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache is a file-based cache for JSON-marshalable registry responses.
//
// Each entry is one JSON file whose name is the SHA-256 hash of the key,
// so any string (including full coordinates and URLs) is a safe key.
// Freshness is judged by file modification time against the TTL; a TTL of
// 0 means entries never expire.
//
// A Cache is not goroutine-safe, but separate Cache values (even in
// separate processes) can share a directory.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates a Cache rooted at dir with the given TTL, creating the
// directory if needed. An empty dir selects the default
// ~/.cache/bzlgen/.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "bzlgen")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live for cache entries.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves the entry for key into v. It returns (true, nil) on a
// fresh hit, (false, nil) on a miss, and (false, ErrExpired) when the
// entry exists but is stale. Reads never modify the cache.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores v under key, overwriting any existing entry and resetting
// its TTL.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(key), data, 0o644)
}

// Clear removes every entry in the cache directory. The directory itself
// is kept.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
