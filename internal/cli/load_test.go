package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexigraph/lexigraph/pkg/cache"
)

const (
	sampleSynsets = `1,entity,that which exists
2,animal,a living organism
3,cat,feline mammal
4,dog,canine mammal
`
	sampleHypernyms = `2,1
3,2
4,2
`
)

func writeDataset(t *testing.T) (synsets, hypernyms string) {
	t.Helper()
	dir := t.TempDir()
	synsets = filepath.Join(dir, "synsets.txt")
	hypernyms = filepath.Join(dir, "hypernyms.txt")
	if err := os.WriteFile(synsets, []byte(sampleSynsets), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hypernyms, []byte(sampleHypernyms), 0644); err != nil {
		t.Fatal(err)
	}
	return synsets, hypernyms
}

func TestDatasetOptsResolve(t *testing.T) {
	cfg := Config{Dataset: DatasetConfig{Synsets: "cfg-s.txt", Hypernyms: "cfg-h.txt"}}

	// Flags win over config
	o := &datasetOpts{synsets: "flag-s.txt", hypernyms: "flag-h.txt"}
	s, h, err := o.resolve(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s != "flag-s.txt" || h != "flag-h.txt" {
		t.Errorf("resolve = (%q, %q), want flag values", s, h)
	}

	// Config fills in missing flags
	o = &datasetOpts{}
	s, h, err = o.resolve(cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s != "cfg-s.txt" || h != "cfg-h.txt" {
		t.Errorf("resolve = (%q, %q), want config values", s, h)
	}

	// Nothing configured is an error
	if _, _, err := (&datasetOpts{}).resolve(Config{}); err == nil {
		t.Error("resolve with no paths should error")
	}
}

func TestLoadDataset(t *testing.T) {
	synsets, hypernyms := writeDataset(t)
	opts := &datasetOpts{synsets: synsets, hypernyms: hypernyms}

	wn, hash, err := loadDataset(context.Background(), Config{}, opts)
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}

	if wn.NounCount() != 4 {
		t.Errorf("nouns = %d, want 4", wn.NounCount())
	}
	if hash == "" {
		t.Error("dataset hash should not be empty")
	}

	// Same inputs fingerprint identically
	_, hash2, err := loadDataset(context.Background(), Config{}, opts)
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}
	if hash != hash2 {
		t.Error("identical inputs should produce the same fingerprint")
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	opts := &datasetOpts{
		synsets:   filepath.Join(t.TempDir(), "missing.txt"),
		hypernyms: filepath.Join(t.TempDir(), "missing.txt"),
	}
	if _, _, err := loadDataset(context.Background(), Config{}, opts); err == nil {
		t.Error("missing input file should error")
	}
}

func TestNewQueryCache(t *testing.T) {
	ctx := context.Background()

	// Disabled yields a null cache
	c := newQueryCache(ctx, CacheConfig{Disabled: true})
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("disabled cache = %T, want *cache.NullCache", c)
	}

	// Explicit directory yields a file cache
	c = newQueryCache(ctx, CacheConfig{Dir: t.TempDir()})
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("file cache = %T, want *cache.FileCache", c)
	}
	c.Close()
}
