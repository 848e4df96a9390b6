package carrier

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// writeTestCarrier writes a PNG pattern image into dir and returns its path.
func writeTestCarrier(t *testing.T, dir string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(path, encodePNG(t, createPatternImage(width, height)), 0o644); err != nil {
		t.Fatalf("failed to write carrier: %v", err)
	}
	return path
}

func TestNewCache(t *testing.T) {
	cache := NewCache(0)
	if cache == nil {
		t.Fatal("NewCache returned nil")
	}
	if cache.entries == nil {
		t.Fatal("NewCache did not initialize entries map")
	}
}

func TestCache_Load(t *testing.T) {
	cache := NewCache(0)
	path := writeTestCarrier(t, t.TempDir(), 20, 20)

	data1, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := Decode(data1); err != nil {
		t.Fatalf("cached bytes do not decode: %v", err)
	}

	data2, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if &data1[0] != &data2[0] {
		t.Error("second Load did not return cached bytes")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestCache_Load_ReloadsChangedFile(t *testing.T) {
	cache := NewCache(0)
	dir := t.TempDir()
	path := writeTestCarrier(t, dir, 8, 8)

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	replacement := encodePNG(t, createPatternImage(16, 4))
	if err := os.WriteFile(path, replacement, 0o644); err != nil {
		t.Fatalf("failed to rewrite carrier: %v", err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("failed to touch carrier: %v", err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after rewrite failed: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Error("Load returned stale bytes after the file changed")
	}
	if !bytes.Equal(second, replacement) {
		t.Error("Load did not return the rewritten file")
	}
}

func TestCache_Load_NonExistent(t *testing.T) {
	cache := NewCache(0)
	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestCache_Load_Directory(t *testing.T) {
	cache := NewCache(0)
	if _, err := cache.Load(t.TempDir()); err == nil {
		t.Error("Load should fail for a directory")
	}
}

func TestCache_Load_TooLarge(t *testing.T) {
	path := writeTestCarrier(t, t.TempDir(), 32, 32)
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	cache := NewCache(stat.Size() - 1)
	_, err = cache.Load(path)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Load: got %v, want ErrFileTooLarge", err)
	}
	if cache.Len() != 0 {
		t.Error("rejected file should not be cached")
	}

	cache = NewCache(stat.Size())
	if _, err := cache.Load(path); err != nil {
		t.Errorf("Load at exactly the limit failed: %v", err)
	}
}

func TestCache_EvictAndClear(t *testing.T) {
	cache := NewCache(0)
	dir := t.TempDir()
	path := writeTestCarrier(t, dir, 4, 4)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(path)
	if cache.Len() != 0 {
		t.Errorf("Len after Evict: got %d, want 0", cache.Len())
	}
	cache.Evict("/never/loaded.png")

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}

func TestCache_ConcurrentLoad(t *testing.T) {
	cache := NewCache(0)
	path := writeTestCarrier(t, t.TempDir(), 10, 10)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}
