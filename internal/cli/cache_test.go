package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCachePathCommand(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	out, err := runCommand(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path failed: %v", err)
	}
	want := filepath.Join(custom, appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir := filepath.Join(custom, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a", "b"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("cached"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := runCommand(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after clear", len(entries))
	}
}

func TestCacheClearEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if _, err := runCommand(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear on empty cache failed: %v", err)
	}
}
