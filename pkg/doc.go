// Package pkg provides the public libraries behind graphwalk.
//
// # Overview
//
// graphwalk is an in-memory, undirected graph with depth-first,
// breadth-first and shortest-path traversals. The pkg directory holds:
//
//  1. [graph] - Vertex and Graph types, mutation and traversals
//  2. [errors] - Coded errors and input validators for the CLI layer
//  3. [observability] - Traversal hooks for logging and instrumentation
//  4. [buildinfo] - Version information injected at link time
//
// # Quick Start
//
//	g := graph.New[string]()
//	a, b, c := graph.NewVertex("A"), graph.NewVertex("B"), graph.NewVertex("C")
//	g.AddVertices([]*graph.Vertex[string]{a, b, c})
//	g.AddEdge(a, b)
//	g.AddEdge(b, c)
//
//	g.BreadthFirstSearch(a)  // [A B C]
//	g.ShortestPath(a, c)     // [A B C], nil
//
// The graph package has no dependencies outside the standard library and
// does not log. Command-line wiring lives in internal/cli.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/graph
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphwalk/pkg/buildinfo
package pkg
