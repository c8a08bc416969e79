package graph

import "slices"

// vertexSet is a set of vertices that iterates in first-insertion order.
// Traversal output is only reproducible because of that ordering, so
// adjacency and membership both use it.
type vertexSet[T any] struct {
	index map[*Vertex[T]]int
	order []*Vertex[T]
}

func newVertexSet[T any]() *vertexSet[T] {
	return &vertexSet[T]{index: make(map[*Vertex[T]]int)}
}

// add inserts v and reports whether it was not already present.
func (s *vertexSet[T]) add(v *Vertex[T]) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// remove deletes v and reports whether it was present. Later elements
// keep their relative order.
func (s *vertexSet[T]) remove(v *Vertex[T]) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.order = slices.Delete(s.order, i, i+1)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

func (s *vertexSet[T]) has(v *Vertex[T]) bool {
	_, ok := s.index[v]
	return ok
}

func (s *vertexSet[T]) len() int { return len(s.order) }

// items returns the live backing slice. Callers must not mutate the set
// while ranging over it.
func (s *vertexSet[T]) items() []*Vertex[T] { return s.order }
