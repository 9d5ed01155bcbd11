package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexigraph.toml")
	content := `
[dataset]
synsets = "data/synsets.txt"
hypernyms = "data/hypernyms.txt"

[cache]
disabled = true

[server]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Dataset.Synsets != "data/synsets.txt" {
		t.Errorf("synsets = %q, want data/synsets.txt", cfg.Dataset.Synsets)
	}
	if cfg.Dataset.Hypernyms != "data/hypernyms.txt" {
		t.Errorf("hypernyms = %q, want data/hypernyms.txt", cfg.Dataset.Hypernyms)
	}
	if !cfg.Cache.Disabled {
		t.Error("cache should be disabled")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
}

func TestLoadConfigMissingDefaultIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig with no file: %v", err)
	}
	if cfg.Dataset.Synsets != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigMissingExplicitFileErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing config file should error")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envSynsets, "/env/synsets.txt")
	t.Setenv(envHypernyms, "/env/hypernyms.txt")
	t.Setenv(envRedis, "localhost:6379")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Dataset.Synsets != "/env/synsets.txt" {
		t.Errorf("synsets = %q, want env override", cfg.Dataset.Synsets)
	}
	if cfg.Dataset.Hypernyms != "/env/hypernyms.txt" {
		t.Errorf("hypernyms = %q, want env override", cfg.Dataset.Hypernyms)
	}
	if cfg.Cache.Redis != "localhost:6379" {
		t.Errorf("redis = %q, want env override", cfg.Cache.Redis)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDGOverride(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if !strings.HasPrefix(dir, "/tmp/xdg-cache") {
		t.Errorf("cacheDir() = %q, should honor XDG_CACHE_HOME", dir)
	}
}
