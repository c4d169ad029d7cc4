// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about bracket construction, solving, rendering and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the tournament core
// stays free of logging and metrics frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBracketHooks(&myBracketHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bracket().OnBattle(node, tie)
//	// ... record the result ...
//	observability.Bracket().OnRoundComplete(node, side, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bracket Hooks
// =============================================================================

// BracketHooks receives events from bracket construction and solving.
//
// Solving is synchronous and has no suspension points, so these hooks take no
// context. Implementations must not call back into the tournament that emitted
// the event.
type BracketHooks interface {
	// OnBuild records a bracket built from entrants with the given number of rounds.
	OnBuild(entrants, rounds int, duration time.Duration)

	// OnBattle records one invocation of a battle policy for a round node.
	OnBattle(node int, tie bool)

	// OnTiebreak records a tiebreaker invocation after a tied battle.
	OnTiebreak(node int)

	// OnRoundComplete records a round transitioning to complete.
	OnRoundComplete(node int, side string, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the rendering collaborators.
type RenderHooks interface {
	// OnRenderStart records a conversion of inputBytes of source into format.
	OnRenderStart(ctx context.Context, format string, inputBytes int)

	// OnRenderComplete records the end of a conversion started with OnRenderStart.
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
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

// NoopBracketHooks is a no-op implementation of BracketHooks.
type NoopBracketHooks struct{}

func (NoopBracketHooks) OnBuild(int, int, time.Duration)            {}
func (NoopBracketHooks) OnBattle(int, bool)                         {}
func (NoopBracketHooks) OnTiebreak(int)                             {}
func (NoopBracketHooks) OnRoundComplete(int, string, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                     {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	bracketHooks BracketHooks = NoopBracketHooks{}
	renderHooks  RenderHooks  = NoopRenderHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetBracketHooks registers custom bracket hooks.
// This should be called once at application startup before any tournament is built.
func SetBracketHooks(h BracketHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		bracketHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
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

// Bracket returns the registered bracket hooks.
func Bracket() BracketHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return bracketHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
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
	bracketHooks = NoopBracketHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
