package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/bracket/pkg/cache"
	"github.com/matzehuels/bracket/pkg/errors"
)

func TestCacheDirStructure(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	// Verify the expected structure: $HOME/.cache/bracket
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(redisURLEnv, "")

	c, keyer, err := newCache(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("--no-cache cache = %T, want *cache.NullCache", c)
	}
	if keyer == nil {
		t.Fatal("keyer should not be nil")
	}

	c, _, err = newCache(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("cache = %T, want *cache.FileCache", c)
	}
	dir, _ := cacheDir()
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("file cache should create %s: %v", dir, err)
	}
}

func TestNewCacheBadRedisURL(t *testing.T) {
	t.Setenv(redisURLEnv, "http://localhost")
	if _, _, err := newCache(context.Background(), false); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("newCache() = %v, want INVALID_INPUT", err)
	}
	// --no-cache never dials.
	if _, _, err := newCache(context.Background(), true); err != nil {
		t.Errorf("newCache(noCache) = %v", err)
	}
}
