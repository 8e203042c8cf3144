// Package observability provides hooks for metrics, tracing, and progress.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution and per-image compositing.
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
//   - Decouples layout and compositing math from presentation
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetComposeHooks(&myComposeHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, numImages)
//	// ... compute layout ...
//	observability.Pipeline().OnLayoutComplete(ctx, cols, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the collage pipeline.
type PipelineHooks interface {
	// Scan events
	OnScanStart(ctx context.Context, folder string)
	OnScanComplete(ctx context.Context, folder string, fileCount int, duration time.Duration, err error)

	// Aspect ratio estimation events
	OnEstimateStart(ctx context.Context, sampleSize int)
	OnEstimateComplete(ctx context.Context, ratio float64, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, numImages int)
	OnLayoutComplete(ctx context.Context, cols, rows int, duration time.Duration, err error)

	// Encode events
	OnEncodeStart(ctx context.Context, path string)
	OnEncodeComplete(ctx context.Context, path string, size int, duration time.Duration, err error)
}

// =============================================================================
// Compose Hooks
// =============================================================================

// ComposeHooks receives per-image events during canvas compositing.
type ComposeHooks interface {
	// OnImagePlaced records an image pasted into its grid cell.
	OnImagePlaced(ctx context.Context, index, total int)

	// OnImageSkipped records an image that failed to decode and was left
	// as a background-only cell.
	OnImageSkipped(ctx context.Context, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnScanStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnScanComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnEstimateStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnEstimateComplete(context.Context, float64, time.Duration, error)  {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                 {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnEncodeStart(context.Context, string)                              {}
func (NoopPipelineHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {
}

// NoopComposeHooks is a no-op implementation of ComposeHooks.
type NoopComposeHooks struct{}

func (NoopComposeHooks) OnImagePlaced(context.Context, int, int)         {}
func (NoopComposeHooks) OnImageSkipped(context.Context, string, error)   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	composeHooks  ComposeHooks  = NoopComposeHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetComposeHooks registers custom compose hooks.
// This should be called once at application startup before any compositing.
func SetComposeHooks(h ComposeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		composeHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Compose returns the registered compose hooks.
func Compose() ComposeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return composeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	composeHooks = NoopComposeHooks{}
}
