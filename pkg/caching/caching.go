// Package caching provides a file-based fetch cache with a TTL, keyed
// by URL. Entries store the fetched HTML together with the final URL
// after redirects, so cache hits reproduce a live fetch.
package caching

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/searchsignal/keywordtree/internal/common"
)

// Entry is one cached fetch.
type Entry struct {
	FinalURL string `json:"final_url"`
	HTML     string `json:"html"`
}

type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a Cache rooted at path, creating the directory if
// needed. A ttl of zero disables expiry.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{path: path, ttl: ttl}, nil
}

// key hashes the URL into a filesystem-safe name.
func (c *Cache) key(url string) string {
	return common.ContentHash([]byte(url))
}

// Get returns the cached entry for a URL if present and fresh.
func (c *Cache) Get(url string) (*Entry, bool) {
	filePath := filepath.Join(c.path, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

// Set stores a fetch result for a URL.
func (c *Cache) Set(url string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
