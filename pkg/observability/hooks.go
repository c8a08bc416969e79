// Package observability provides hooks for timing and logging graph
// traversals.
//
// The graph package stays free of logging and metrics; callers that run
// traversals on behalf of a user (the CLI) report them through the hooks
// registered here. The default implementation does nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetTraversalHooks(&myHooks{})
//
// Callers emit events around each traversal:
//
//	observability.Traversal().OnTraversalStart(ctx, observability.KindBFS, "A")
//	order := g.BreadthFirstSearch(a)
//	observability.Traversal().OnTraversalComplete(ctx, observability.KindBFS, len(order), time.Since(start), nil)
package observability

import (
	"context"
	"sync"
	"time"
)

// Traversal kinds reported to hooks.
const (
	KindDFS          = "dfs"
	KindDFSIterative = "dfs-iterative"
	KindBFS          = "bfs"
	KindShortestPath = "shortest-path"
	KindComponents   = "components"
)

// TraversalHooks receives events around graph traversals.
type TraversalHooks interface {
	// OnTraversalStart records the start of a traversal of the given kind
	// from the vertex labelled start.
	OnTraversalStart(ctx context.Context, kind, start string)

	// OnTraversalComplete records a finished traversal. visited is the
	// number of values produced; err is non-nil if the traversal found no
	// result (for example, no path).
	OnTraversalComplete(ctx context.Context, kind string, visited int, duration time.Duration, err error)
}

// NoopTraversalHooks is a no-op implementation of TraversalHooks.
type NoopTraversalHooks struct{}

func (NoopTraversalHooks) OnTraversalStart(context.Context, string, string) {}
func (NoopTraversalHooks) OnTraversalComplete(context.Context, string, int, time.Duration, error) {
}

var (
	traversalHooks TraversalHooks = NoopTraversalHooks{}
	hooksMu        sync.RWMutex
)

// SetTraversalHooks registers custom traversal hooks. A nil h is ignored.
func SetTraversalHooks(h TraversalHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		traversalHooks = h
	}
}

// Traversal returns the registered traversal hooks.
func Traversal() TraversalHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return traversalHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	traversalHooks = NoopTraversalHooks{}
}

// Span reports a traversal start immediately and returns a function that
// reports its completion with the elapsed time.
//
//	end := observability.Span(ctx, observability.KindBFS, "A")
//	order := g.BreadthFirstSearch(a)
//	end(len(order), nil)
func Span(ctx context.Context, kind, start string) func(visited int, err error) {
	hooks := Traversal()
	began := time.Now()
	hooks.OnTraversalStart(ctx, kind, start)
	return func(visited int, err error) {
		hooks.OnTraversalComplete(ctx, kind, visited, time.Since(began), err)
	}
}
