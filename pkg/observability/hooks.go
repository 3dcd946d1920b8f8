// Package observability provides hooks for editor and storage events.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about editing gestures, patch mutations, and document
// storage operations.
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
//   - Allows different backends (structured logging, metrics, tracing)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditorHooks(&myEditorHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Editor().OnActionStarted(ctx, action)
//	// ... gesture runs ...
//	observability.Editor().OnActionCommitted(ctx, action, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Editor Hooks
// =============================================================================

// EditorHooks receives events from the editing gesture lifecycle.
type EditorHooks interface {
	// Gesture events. Every started gesture ends in exactly one of
	// committed or aborted.
	OnActionStarted(ctx context.Context, action string)
	OnActionCommitted(ctx context.Context, action string, duration time.Duration)
	OnActionAborted(ctx context.Context, action string)

	// History events
	OnUndo(ctx context.Context, action string, err error)
	OnRedo(ctx context.Context, action string, err error)
}

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from patch mutations.
type GraphHooks interface {
	// OnConnect records a wire forming between two nodes.
	OnConnect(ctx context.Context, fromNode, toNode string)

	// OnDisconnect records a wire being removed.
	OnDisconnect(ctx context.Context, fromNode, toNode string)

	// OnNodeAdded records a node joining the patch.
	OnNodeAdded(ctx context.Context, nodeID string)

	// OnNodeRemoved records a node leaving the patch.
	OnNodeRemoved(ctx context.Context, nodeID string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from document storage operations.
type StoreHooks interface {
	// OnSave records a document write with the encoded size in bytes.
	OnSave(ctx context.Context, docID string, size int, duration time.Duration, err error)

	// OnLoad records a document read.
	OnLoad(ctx context.Context, docID string, duration time.Duration, err error)

	// OnDelete records a document removal.
	OnDelete(ctx context.Context, docID string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnActionStarted(context.Context, string)                  {}
func (NoopEditorHooks) OnActionCommitted(context.Context, string, time.Duration) {}
func (NoopEditorHooks) OnActionAborted(context.Context, string)                  {}
func (NoopEditorHooks) OnUndo(context.Context, string, error)                    {}
func (NoopEditorHooks) OnRedo(context.Context, string, error)                    {}

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnConnect(context.Context, string, string)    {}
func (NoopGraphHooks) OnDisconnect(context.Context, string, string) {}
func (NoopGraphHooks) OnNodeAdded(context.Context, string)          {}
func (NoopGraphHooks) OnNodeRemoved(context.Context, string)        {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSave(context.Context, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnLoad(context.Context, string, time.Duration, error)      {}
func (NoopStoreHooks) OnDelete(context.Context, string, error)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	graphHooks  GraphHooks  = NoopGraphHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	hooksMu     sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before any editing begins.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any editing begins.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any storage operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
	graphHooks = NoopGraphHooks{}
	storeHooks = NoopStoreHooks{}
}
