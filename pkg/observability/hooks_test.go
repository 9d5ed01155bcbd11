package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Load hooks
	l := NoopLoadHooks{}
	l.OnParseStart(ctx, "synsets", "synsets.txt")
	l.OnParseComplete(ctx, "synsets", "synsets.txt", 82192, time.Second, nil)
	l.OnDatasetReady(ctx, 119188, 82192, 84505)

	// Query hooks
	q := NoopQueryHooks{}
	q.OnQueryStart(ctx, "distance")
	q.OnQueryComplete(ctx, "distance", time.Millisecond, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "query")
	c.OnCacheMiss(ctx, "query")
	c.OnCacheSet(ctx, "graph", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Load() should return NoopLoadHooks by default")
	}
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Query() should return NoopQueryHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customLoad := &testLoadHooks{}
	SetLoadHooks(customLoad)
	if Load() != customLoad {
		t.Error("SetLoadHooks should set custom hooks")
	}

	customQuery := &testQueryHooks{}
	SetQueryHooks(customQuery)
	if Query() != customQuery {
		t.Error("SetQueryHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Reset() should restore NoopLoadHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLoadHooks{}
	SetLoadHooks(custom)

	// Setting nil should be ignored
	SetLoadHooks(nil)

	if Load() != custom {
		t.Error("SetLoadHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLoadHooks struct{ NoopLoadHooks }
type testQueryHooks struct{ NoopQueryHooks }
type testCacheHooks struct{ NoopCacheHooks }
