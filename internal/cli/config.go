package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the application name used for directories and display.
const appName = "lexigraph"

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "lexigraph.toml"

// Config is the CLI configuration, read from a TOML file with environment
// variable overrides.
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
}

// DatasetConfig locates the two input files.
type DatasetConfig struct {
	Synsets   string `toml:"synsets"`
	Hypernyms string `toml:"hypernyms"`
}

// CacheConfig selects the query result cache backend.
type CacheConfig struct {
	// Disabled turns off result caching entirely.
	Disabled bool `toml:"disabled"`

	// Dir overrides the file cache directory (default ~/.cache/lexigraph).
	Dir string `toml:"dir"`

	// Redis selects a Redis backend when set, e.g. "localhost:6379".
	Redis string `toml:"redis"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Environment variables overriding the config file.
const (
	envSynsets   = "LEXIGRAPH_SYNSETS"
	envHypernyms = "LEXIGRAPH_HYPERNYMS"
	envRedis     = "LEXIGRAPH_REDIS"
)

// loadConfig reads configuration from path. An empty path falls back to
// ./lexigraph.toml if present; a missing default file yields the zero
// config. Environment variables override file values.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			// No config file is fine; flags and env cover everything.
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envSynsets); v != "" {
		cfg.Dataset.Synsets = v
	}
	if v := os.Getenv(envHypernyms); v != "" {
		cfg.Dataset.Hypernyms = v
	}
	if v := os.Getenv(envRedis); v != "" {
		cfg.Cache.Redis = v
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/lexigraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
