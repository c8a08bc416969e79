package graph

import "slices"

// Vertex is a graph node holding a caller-supplied value and the set of
// vertices it shares an edge with.
//
// Vertices are identified by pointer, not by Value: two vertices carrying
// equal values are distinct nodes. Adjacency is symmetric and can only be
// changed through [NewVertex] and the [Graph] edge operations.
type Vertex[T any] struct {
	Value T

	adjacent *vertexSet[T]
}

// NewVertex creates a vertex holding value. Any vertices passed as
// adjacent are connected to the new vertex in both directions, in the
// order given, exactly as if [Graph.AddEdge] had been called for each.
func NewVertex[T any](value T, adjacent ...*Vertex[T]) *Vertex[T] {
	v := &Vertex[T]{Value: value, adjacent: newVertexSet[T]()}
	for _, u := range adjacent {
		connect(v, u)
	}
	return v
}

// Adjacent returns the neighbours of v in the order their edges were added.
// The returned slice is a copy.
func (v *Vertex[T]) Adjacent() []*Vertex[T] {
	return slices.Clone(v.neighbours().items())
}

// IsAdjacent reports whether an edge joins v and u.
func (v *Vertex[T]) IsAdjacent(u *Vertex[T]) bool {
	return v.neighbours().has(u)
}

// Degree returns the number of distinct neighbours of v. A self-loop
// counts once.
func (v *Vertex[T]) Degree() int { return v.neighbours().len() }

// neighbours lazily initialises the adjacency set so a Vertex built as a
// composite literal is still usable.
func (v *Vertex[T]) neighbours() *vertexSet[T] {
	if v.adjacent == nil {
		v.adjacent = newVertexSet[T]()
	}
	return v.adjacent
}

func connect[T any](a, b *Vertex[T]) {
	if a == nil || b == nil {
		return
	}
	a.neighbours().add(b)
	b.neighbours().add(a)
}

func disconnect[T any](a, b *Vertex[T]) {
	if a == nil || b == nil {
		return
	}
	a.neighbours().remove(b)
	b.neighbours().remove(a)
}
