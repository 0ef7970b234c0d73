// Package observability provides hooks for instrumenting conversions.
//
// The converter itself stays free of metrics and tracing dependencies.
// Consumers that want instrumentation register a [ConvertHooks]
// implementation at startup; the pipeline fires events around each stage
// of a conversion. The default implementation is a no-op, so libraries can
// call hooks unconditionally.
//
// Register hooks once, before running conversions:
//
//	observability.SetConvertHooks(&myHooks{})
package observability

import (
	"context"
	"sync"
	"time"
)

// ConvertHooks receives events from the conversion pipeline.
type ConvertHooks interface {
	// OnLoadStart fires before the description document is read.
	OnLoadStart(ctx context.Context, input string)
	// OnLoadComplete fires after reading, with the configured capacity.
	OnLoadComplete(ctx context.Context, input string, keysPerBlock int, duration time.Duration, err error)

	// OnBuildStart fires before the tree model is built.
	OnBuildStart(ctx context.Context)
	// OnBuildComplete fires after building, with the node count.
	OnBuildComplete(ctx context.Context, nodeCount int, duration time.Duration, err error)

	// OnRenderStart fires before DOT emission.
	OnRenderStart(ctx context.Context, nodeCount int)
	// OnRenderComplete fires after emission, with the output size in bytes.
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)
}

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnLoadStart(context.Context, string)                               {}
func (NoopConvertHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopConvertHooks) OnBuildStart(context.Context)                                      {}
func (NoopConvertHooks) OnBuildComplete(context.Context, int, time.Duration, error)        {}
func (NoopConvertHooks) OnRenderStart(context.Context, int)                                {}
func (NoopConvertHooks) OnRenderComplete(context.Context, int, time.Duration, error)       {}

var (
	convertHooks ConvertHooks = NoopConvertHooks{}
	hooksMu      sync.RWMutex
)

// SetConvertHooks registers custom conversion hooks.
// This should be called once at application startup, before any conversion.
// A nil argument is ignored.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	convertHooks = NoopConvertHooks{}
}
