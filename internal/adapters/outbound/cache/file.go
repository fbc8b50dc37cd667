package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdidvp/polaxis/internal/domain"
	"github.com/vmihailenco/msgpack/v5"
)

// FileCache is a msgpack-on-disk implementation of domain.ResultCache.
// Entries never expire; a new bank version yields new keys.
type FileCache struct {
	mu  sync.RWMutex
	dir string
}

// NewFile creates a file cache rooted at dir.
func NewFile(dir string) *FileCache {
	return &FileCache{dir: dir}
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, "results", key+".mp")
}

// Get reads a cached classification. A missing entry is (nil, false, nil).
func (c *FileCache) Get(_ context.Context, key string) (*domain.Classification, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out domain.Classification
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}
	return &out, true, nil
}

// Put writes through a temp file and renames it into place, so readers
// never observe a partial entry.
func (c *FileCache) Put(_ context.Context, key string, v *domain.Classification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Clear drops every cached entry.
func (c *FileCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}
