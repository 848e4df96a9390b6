package carrier

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// ErrFileTooLarge is returned by Cache.Load when a file exceeds the cache's size limit.
var ErrFileTooLarge = errors.New("file too large")

// Cache provides thread-safe caching of carrier file contents to avoid redundant disk reads.
//
// The cache stores the raw encoded bytes of each file keyed by path, never
// decoded pixels: every codec call decodes its own PixelGrid from the cached
// bytes and owns it exclusively.
//
// An entry is reused only while the file's size and modification time match
// the values observed when it was read, so files rewritten on disk are picked
// up on the next Load.
//
// # Example Usage
//
//	cache := carrier.NewCache(16 << 20)
//	data, err := cache.Load("/path/to/cover.png")
//	if err != nil {
//	    return err
//	}
//	grid, err := carrier.Decode(data)
type Cache struct {
	mu       sync.RWMutex
	maxBytes int64
	entries  map[string]cacheEntry
}

type cacheEntry struct {
	data    []byte
	size    int64
	modTime time.Time
}

// NewCache creates an empty cache. Files larger than maxBytes are rejected
// with ErrFileTooLarge; maxBytes <= 0 disables the limit.
func NewCache(maxBytes int64) *Cache {
	return &Cache{
		maxBytes: maxBytes,
		entries:  make(map[string]cacheEntry),
	}
}

// Load returns the contents of the file at path, from the cache when the file
// is unchanged since it was last read.
//
// The returned slice is shared with the cache and must not be modified.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error wrapping ErrFileTooLarge if the file exceeds the size limit
func (c *Cache) Load(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("failed to open image: %s is a directory", path)
	}
	if c.maxBytes > 0 && stat.Size() > c.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, path, stat.Size(), c.maxBytes)
	}

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && entry.size == stat.Size() && entry.modTime.Equal(stat.ModTime()) {
		return entry.data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	// The file may have grown between Stat and ReadFile.
	if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, path, len(data), c.maxBytes)
	}

	c.mu.Lock()
	c.entries[path] = cacheEntry{data: data, size: stat.Size(), modTime: stat.ModTime()}
	c.mu.Unlock()

	return data, nil
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all files from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Evict removes a specific file from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
