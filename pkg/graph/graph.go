package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned by [Graph.ShortestPath] and [Graph.Distance]
	// when the end vertex cannot be reached from the start vertex, or when
	// either endpoint is nil.
	ErrPathNotFound = errors.New("no path between vertices")

	// ErrDanglingAdjacency is returned by [Graph.Validate] when a member
	// vertex is adjacent to a vertex that is not in the graph.
	ErrDanglingAdjacency = errors.New("adjacent vertex not in graph")

	// ErrAsymmetricAdjacency is returned by [Graph.Validate] when a vertex
	// lists a neighbour that does not list it back.
	ErrAsymmetricAdjacency = errors.New("adjacency is not symmetric")
)

// Graph is an undirected, unweighted graph over vertices holding values of
// type T. Membership and adjacency both iterate in insertion order, which
// makes every traversal deterministic for a given construction sequence.
//
// The zero value is not usable - use [New].
// Graph is not safe for concurrent use without external synchronization.
type Graph[T any] struct {
	nodes *vertexSet[T]
}

// New creates an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{nodes: newVertexSet[T]()}
}

// AddVertex registers v with the graph. Adding a vertex that is already a
// member, or a nil vertex, is a no-op.
func (g *Graph[T]) AddVertex(v *Vertex[T]) {
	if v == nil {
		return
	}
	g.nodes.add(v)
}

// AddVertices adds each vertex in vs, in order.
func (g *Graph[T]) AddVertices(vs []*Vertex[T]) {
	for _, v := range vs {
		g.AddVertex(v)
	}
}

// AddEdge connects v1 and v2 in both directions. Re-adding an existing
// edge is a no-op and v1 == v2 creates a self-loop.
//
// AddEdge does not check that either vertex is a member of g; use
// [Graph.Validate] to detect edges that leave the graph.
func (g *Graph[T]) AddEdge(v1, v2 *Vertex[T]) {
	connect(v1, v2)
}

// RemoveEdge disconnects v1 and v2. No error is returned if the edge does
// not exist.
func (g *Graph[T]) RemoveEdge(v1, v2 *Vertex[T]) {
	disconnect(v1, v2)
}

// RemoveVertex removes v from the graph and from the adjacency set of every
// remaining member. v is also disconnected from each of its own neighbours,
// members or not, so no vertex anywhere is left pointing at it and v ends
// with no neighbours.
//
// This is O(N*D) where N is the number of vertices and D the average degree.
func (g *Graph[T]) RemoveVertex(v *Vertex[T]) {
	if v == nil {
		return
	}
	for _, n := range v.Adjacent() {
		disconnect(v, n)
	}
	for _, n := range g.nodes.items() {
		n.neighbours().remove(v)
	}
	g.nodes.remove(v)
}

// Has reports whether v is a member of g.
func (g *Graph[T]) Has(v *Vertex[T]) bool { return g.nodes.has(v) }

// Len returns the number of vertices in g.
func (g *Graph[T]) Len() int { return g.nodes.len() }

// Vertices returns the members of g in insertion order. The returned slice
// is a copy; the vertices are not.
func (g *Graph[T]) Vertices() []*Vertex[T] {
	out := make([]*Vertex[T], g.nodes.len())
	copy(out, g.nodes.items())
	return out
}

// EdgeCount returns the number of undirected edges between members of g.
// A self-loop counts as one edge. Edges to non-members are ignored.
func (g *Graph[T]) EdgeCount() int {
	var loops, ends int
	for _, v := range g.nodes.items() {
		for _, n := range v.neighbours().items() {
			switch {
			case n == v:
				loops++
			case g.nodes.has(n):
				ends++
			}
		}
	}
	return loops + ends/2
}

// Validate checks the structural invariants of g and returns nil if they
// hold:
//
//  1. Every neighbour of a member is itself a member
//  2. Adjacency is symmetric
//
// The returned error wraps [ErrDanglingAdjacency] or [ErrAsymmetricAdjacency]
// and names the offending vertex values.
func (g *Graph[T]) Validate() error {
	for _, v := range g.nodes.items() {
		for _, n := range v.neighbours().items() {
			if !g.nodes.has(n) {
				return fmt.Errorf("%w: %v -> %v", ErrDanglingAdjacency, v.Value, n.Value)
			}
			if !n.neighbours().has(v) {
				return fmt.Errorf("%w: %v -> %v", ErrAsymmetricAdjacency, v.Value, n.Value)
			}
		}
	}
	return nil
}
