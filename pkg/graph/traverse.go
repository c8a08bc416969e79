package graph

// DepthFirstSearch returns the values of every vertex reachable from start
// in depth-first preorder. Neighbours are explored in the order their edges
// were added. A nil start yields an empty result.
//
// The traversal recurses once per vertex on the current path, so very deep
// graphs should use [Graph.DepthFirstSearchIterative].
func (g *Graph[T]) DepthFirstSearch(start *Vertex[T]) []T {
	w := &dfsWalker[T]{
		visited: make(map[*Vertex[T]]bool),
		result:  []T{},
	}
	w.traverse(start)
	return w.result
}

// dfsWalker carries the accumulator state of a recursive depth-first search.
type dfsWalker[T any] struct {
	visited map[*Vertex[T]]bool
	result  []T
}

func (w *dfsWalker[T]) traverse(v *Vertex[T]) {
	if v == nil {
		return
	}
	w.visited[v] = true
	w.result = append(w.result, v.Value)
	for _, n := range v.neighbours().items() {
		if !w.visited[n] {
			w.traverse(n)
		}
	}
}

// DepthFirstSearchIterative returns the values of every vertex reachable
// from start using an explicit stack instead of recursion.
//
// Neighbours are marked visited when pushed, not when popped, and the stack
// pops the most recently pushed neighbour first. The order is therefore a
// valid depth-first order but usually differs from [Graph.DepthFirstSearch].
// A nil start yields an empty result.
func (g *Graph[T]) DepthFirstSearchIterative(start *Vertex[T]) []T {
	result := []T{}
	if start == nil {
		return result
	}

	visited := map[*Vertex[T]]bool{start: true}
	stack := []*Vertex[T]{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, v.Value)

		for _, n := range v.neighbours().items() {
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return result
}

// BreadthFirstSearch returns the values of every vertex reachable from
// start in breadth-first order: all vertices at distance k precede any at
// distance k+1. Within a layer, vertices appear in discovery order.
// A nil start yields an empty result.
func (g *Graph[T]) BreadthFirstSearch(start *Vertex[T]) []T {
	result := []T{}
	if start == nil {
		return result
	}

	// Marking at enqueue time keeps a vertex reachable from several
	// predecessors from being queued twice.
	visited := map[*Vertex[T]]bool{start: true}
	queue := []*Vertex[T]{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		result = append(result, v.Value)

		for _, n := range v.neighbours().items() {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return result
}
