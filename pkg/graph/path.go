package graph

import "slices"

// ShortestPath returns the values along one shortest path from start to end,
// both inclusive. Edges are unweighted, so "shortest" means fewest edges.
// If start and end are the same vertex the result is [start.Value].
//
// ShortestPath returns [ErrPathNotFound] if end is unreachable from start or
// either vertex is nil.
//
// The search is a breadth-first search that records, for each vertex, the
// vertex it was first discovered from. Predecessors are keyed by vertex
// identity, so vertices with equal values do not interfere.
func (g *Graph[T]) ShortestPath(start, end *Vertex[T]) ([]T, error) {
	if start == nil || end == nil {
		return nil, ErrPathNotFound
	}
	if start == end {
		return []T{start.Value}, nil
	}

	pred := make(map[*Vertex[T]]*Vertex[T])
	visited := map[*Vertex[T]]bool{start: true}
	queue := []*Vertex[T]{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if v == end {
			return walkBack(pred, start, end), nil
		}

		for _, n := range v.neighbours().items() {
			if !visited[n] {
				visited[n] = true
				pred[n] = v
				queue = append(queue, n)
			}
		}
	}
	return nil, ErrPathNotFound
}

// Distance returns the number of edges on a shortest path between start
// and end. It returns 0 when start == end and [ErrPathNotFound] under the
// same conditions as [Graph.ShortestPath].
func (g *Graph[T]) Distance(start, end *Vertex[T]) (int, error) {
	path, err := g.ShortestPath(start, end)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// walkBack reconstructs the start→end path from a predecessor map. end must
// have been discovered from start.
func walkBack[T any](pred map[*Vertex[T]]*Vertex[T], start, end *Vertex[T]) []T {
	path := []T{end.Value}
	for v := pred[end]; v != start; v = pred[v] {
		path = append(path, v.Value)
	}
	path = append(path, start.Value)
	slices.Reverse(path)
	return path
}
