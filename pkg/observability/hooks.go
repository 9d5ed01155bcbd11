// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about dataset loading, query execution, and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLoadHooks(&myLoadHooks{})
//	    observability.SetQueryHooks(&myQueryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Load().OnParseStart(ctx, "synsets", path)
//	// ... do parsing ...
//	observability.Load().OnParseComplete(ctx, "synsets", path, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from dataset loading.
type LoadHooks interface {
	// Parse events; kind is "synsets" or "hypernyms".
	OnParseStart(ctx context.Context, kind, source string)
	OnParseComplete(ctx context.Context, kind, source string, records int, duration time.Duration, err error)

	// OnDatasetReady fires once both inputs are parsed and queries can run.
	OnDatasetReady(ctx context.Context, nouns, synsets, edges int)
}

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from query execution.
type QueryHooks interface {
	// OnQueryStart records the beginning of a query. kind names the
	// operation ("distance", "sca", "outcast").
	OnQueryStart(ctx context.Context, kind string)

	// OnQueryComplete records a finished query.
	OnQueryComplete(ctx context.Context, kind string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnParseStart(context.Context, string, string) {}
func (NoopLoadHooks) OnParseComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopLoadHooks) OnDatasetReady(context.Context, int, int, int) {}

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQueryStart(context.Context, string)                          {}
func (NoopQueryHooks) OnQueryComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loadHooks  LoadHooks  = NoopLoadHooks{}
	queryHooks QueryHooks = NoopQueryHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetLoadHooks registers custom load hooks.
// This should be called once at application startup before any datasets load.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup before any queries run.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loadHooks = NoopLoadHooks{}
	queryHooks = NoopQueryHooks{}
	cacheHooks = NoopCacheHooks{}
}
