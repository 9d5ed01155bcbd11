package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lexigraph/lexigraph/pkg/cache"
	"github.com/lexigraph/lexigraph/pkg/errors"
	"github.com/lexigraph/lexigraph/pkg/observability"
	"github.com/lexigraph/lexigraph/pkg/wordnet"
)

// datasetOpts holds the shared --synsets/--hypernyms flags. Flag values take
// precedence over the config file.
type datasetOpts struct {
	synsets   string
	hypernyms string
}

// resolve merges flag values with the config file and validates the result.
func (o *datasetOpts) resolve(cfg Config) (synsets, hypernyms string, err error) {
	synsets, hypernyms = o.synsets, o.hypernyms
	if synsets == "" {
		synsets = cfg.Dataset.Synsets
	}
	if hypernyms == "" {
		hypernyms = cfg.Dataset.Hypernyms
	}

	if err := errors.ValidateDatasetPath(synsets); err != nil {
		return "", "", fmt.Errorf("synsets: %w", err)
	}
	if err := errors.ValidateDatasetPath(hypernyms); err != nil {
		return "", "", fmt.Errorf("hypernyms: %w", err)
	}
	return synsets, hypernyms, nil
}

// loadDataset reads both input files, builds the WordNet, and returns it
// with the dataset fingerprint used to scope cache keys. A spinner animates
// while parsing since the full dataset takes a moment to index.
func loadDataset(ctx context.Context, cfg Config, opts *datasetOpts) (*wordnet.WordNet, string, error) {
	synsetsPath, hypernymsPath, err := opts.resolve(cfg)
	if err != nil {
		return nil, "", err
	}

	logger := loggerFromContext(ctx)
	logger.Debug("loading dataset", "synsets", synsetsPath, "hypernyms", hypernymsPath)

	synsetsData, err := os.ReadFile(synsetsPath)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read synsets %s", synsetsPath)
	}
	hypernymsData, err := os.ReadFile(hypernymsPath)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read hypernyms %s", hypernymsPath)
	}
	hash := cache.HashAll(synsetsData, hypernymsData)

	spinner := newSpinnerWithContext(ctx, "Indexing dataset...")
	spinner.Start()

	start := time.Now()
	observability.Load().OnParseStart(ctx, "synsets", synsetsPath)
	wn, err := wordnet.New(bytes.NewReader(synsetsData), bytes.NewReader(hypernymsData))
	observability.Load().OnParseComplete(ctx, "synsets", synsetsPath, synsetCount(wn), time.Since(start), err)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Failed to load dataset: %v", err))
		return nil, "", err
	}
	spinner.Stop()

	observability.Load().OnDatasetReady(ctx, wn.NounCount(), wn.SynsetCount(), wn.Graph().EdgeCount())
	logger.Infof("Loaded %d nouns across %d synsets (%s)",
		wn.NounCount(), wn.SynsetCount(), time.Since(start).Round(time.Millisecond))

	return wn, hash, nil
}

func synsetCount(wn *wordnet.WordNet) int {
	if wn == nil {
		return 0
	}
	return wn.SynsetCount()
}

// newQueryCache builds the result cache from configuration: disabled, Redis,
// or the default file cache. Failures fall back to a null cache so queries
// still run uncached.
func newQueryCache(ctx context.Context, cfg CacheConfig) cache.Cache {
	logger := loggerFromContext(ctx)

	if cfg.Disabled {
		return cache.NewNullCache()
	}

	if cfg.Redis != "" {
		c, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf("Redis cache unavailable, running uncached: %v", err)
			return cache.NewNullCache()
		}
		return c
	}

	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		dir = d
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warnf("File cache unavailable, running uncached: %v", err)
		return cache.NewNullCache()
	}
	return c
}
