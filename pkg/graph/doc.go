// Package graph provides an in-memory, undirected, unweighted graph with
// depth-first, breadth-first and shortest-path traversals.
//
// # Overview
//
// A [Graph] holds a set of [Vertex] values. Each vertex carries an opaque
// caller-supplied Value and a set of adjacent vertices. Adjacency is a
// symmetric peer relation: after [Graph.AddEdge] (v1, v2), v1 is adjacent
// to v2 and v2 is adjacent to v1. Vertices are identified by pointer, so
// values need not be unique or comparable.
//
// # Basic Usage
//
// Create vertices with [NewVertex], register them with [Graph.AddVertex] or
// [Graph.AddVertices], and connect them with [Graph.AddEdge]:
//
//	g := graph.New[string]()
//	a, b, c := graph.NewVertex("A"), graph.NewVertex("B"), graph.NewVertex("C")
//	g.AddVertices([]*graph.Vertex[string]{a, b, c})
//	g.AddEdge(a, b)
//	g.AddEdge(b, c)
//
//	g.BreadthFirstSearch(a)   // [A B C]
//	g.ShortestPath(a, c)      // [A B C], nil
//
// [Graph.RemoveVertex] detaches a vertex from every member's adjacency set
// before removing it, so no member is ever left pointing at a removed vertex.
//
// # Ordering
//
// Both the member set and every adjacency set iterate in insertion order.
// Traversal output is therefore fully determined by the order in which
// vertices and edges were added, and tests can assert exact sequences.
//
// [Graph.DepthFirstSearch] and [Graph.DepthFirstSearchIterative] both
// produce depth-first orders but not the same one: the iterative form marks
// neighbours visited as it pushes them and pops them last-in first-out.
//
// # Validation
//
// Edge operations accept any two vertices, including vertices that were
// never added to the graph and self-loops. [Graph.Validate] reports edges
// that leave the graph ([ErrDanglingAdjacency]) and broken symmetry
// ([ErrAsymmetricAdjacency]).
//
// # Shortest Paths
//
// [Graph.ShortestPath] runs a breadth-first search from start and returns
// the first path it finds to end, which has the minimum number of edges.
// When end is unreachable it returns [ErrPathNotFound] rather than an empty
// path.
//
// # Concurrency
//
// Graph and Vertex are not safe for concurrent use. Callers must
// synchronize access if multiple goroutines read or modify the same graph.
package graph
