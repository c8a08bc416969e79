package graph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// build creates a graph of string vertices in label order and connects the
// given edges in order.
func build(t *testing.T, labels []string, edges [][2]string) (*Graph[string], map[string]*Vertex[string]) {
	t.Helper()
	g := New[string]()
	vs := make(map[string]*Vertex[string], len(labels))
	for _, l := range labels {
		vs[l] = NewVertex(l)
		g.AddVertex(vs[l])
	}
	for _, e := range edges {
		a, ok := vs[e[0]]
		if !ok {
			t.Fatalf("edge %v: unknown vertex %q", e, e[0])
		}
		b, ok := vs[e[1]]
		if !ok {
			t.Fatalf("edge %v: unknown vertex %q", e, e[1])
		}
		g.AddEdge(a, b)
	}
	return g, vs
}

func values(vs []*Vertex[string]) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Value
	}
	return out
}

func TestNewGraphIsEmpty(t *testing.T) {
	g := New[int]()
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if got := g.Vertices(); len(got) != 0 {
		t.Errorf("Vertices() = %v, want empty", got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestAddVertexIdempotent(t *testing.T) {
	g := New[string]()
	a := NewVertex("A")
	g.AddVertex(a)
	g.AddVertex(a)
	g.AddVertex(nil)

	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if !g.Has(a) {
		t.Error("Has(a) = false, want true")
	}
}

func TestAddVerticesKeepsOrder(t *testing.T) {
	g := New[string]()
	a, b, c := NewVertex("A"), NewVertex("B"), NewVertex("C")
	g.AddVertex(b)
	g.AddVertices([]*Vertex[string]{a, b, c})

	if diff := cmp.Diff([]string{"B", "A", "C"}, values(g.Vertices())); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddEdgeSymmetric(t *testing.T) {
	_, vs := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	a, b := vs["A"], vs["B"]

	if !a.IsAdjacent(b) {
		t.Error("A should be adjacent to B")
	}
	if !b.IsAdjacent(a) {
		t.Error("B should be adjacent to A")
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	g, vs := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}, {"A", "B"}, {"B", "A"}})

	if got := vs["A"].Degree(); got != 1 {
		t.Errorf("A.Degree() = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestAddEdgeSelfLoop(t *testing.T) {
	g, vs := build(t, []string{"A"}, [][2]string{{"A", "A"}})
	a := vs["A"]

	if !a.IsAdjacent(a) {
		t.Error("A should be adjacent to itself")
	}
	if got := a.Degree(); got != 1 {
		t.Errorf("A.Degree() = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestRemoveEdge(t *testing.T) {
	g, vs := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	a, b, c := vs["A"], vs["B"], vs["C"]

	g.RemoveEdge(b, a)

	if a.IsAdjacent(b) || b.IsAdjacent(a) {
		t.Error("edge A-B should be gone in both directions")
	}
	if !b.IsAdjacent(c) {
		t.Error("edge B-C should be untouched")
	}

	// Removing a missing edge is a no-op.
	g.RemoveEdge(a, c)
	g.RemoveEdge(a, b)
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestRemoveVertex(t *testing.T) {
	g, vs := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	a, b, c := vs["A"], vs["B"], vs["C"]

	g.RemoveVertex(b)

	if g.Has(b) {
		t.Error("B should no longer be a member")
	}
	if a.IsAdjacent(b) || c.IsAdjacent(b) {
		t.Error("no member should reference B")
	}
	if b.Degree() != 0 {
		t.Errorf("B.Degree() = %d, want 0", b.Degree())
	}
	if diff := cmp.Diff([]string{"A", "C"}, values(g.Vertices())); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestRemoveVertexWithSelfLoop(t *testing.T) {
	g, vs := build(t, []string{"A", "B"}, [][2]string{{"A", "A"}, {"A", "B"}})

	g.RemoveVertex(vs["A"])

	if g.Len() != 1 || vs["B"].Degree() != 0 {
		t.Errorf("Len() = %d, B.Degree() = %d, want 1 and 0", g.Len(), vs["B"].Degree())
	}
}

func TestRemoveVertexNotMember(t *testing.T) {
	g, vs := build(t, []string{"A"}, nil)
	stray := NewVertex("X")

	g.RemoveVertex(stray)
	g.RemoveVertex(nil)

	if !g.Has(vs["A"]) || g.Len() != 1 {
		t.Error("removing a non-member should not change the graph")
	}
}

func TestRemoveVertexDetachesOutsideNeighbours(t *testing.T) {
	tests := []struct {
		name   string
		member bool
	}{
		{"member", true},
		{"non-member", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[string]()
			v := NewVertex("V")
			outside := NewVertex("W")
			if tt.member {
				g.AddVertex(v)
			}
			g.AddEdge(v, outside)

			g.RemoveVertex(v)

			if v.Degree() != 0 {
				t.Errorf("removed vertex still has %d neighbours", v.Degree())
			}
			if outside.IsAdjacent(v) {
				t.Error("outside neighbour still points at the removed vertex")
			}
			if g.Has(v) {
				t.Error("removed vertex is still a member")
			}
		})
	}
}

func TestNewVertexWithAdjacent(t *testing.T) {
	b := NewVertex("B")
	c := NewVertex("C")
	a := NewVertex("A", b, c, b)

	if diff := cmp.Diff([]string{"B", "C"}, values(a.Adjacent())); diff != "" {
		t.Errorf("A.Adjacent() mismatch (-want +got):\n%s", diff)
	}
	if !b.IsAdjacent(a) || !c.IsAdjacent(a) {
		t.Error("pre-populated neighbours should point back at A")
	}
}

func TestZeroValueVertex(t *testing.T) {
	v := &Vertex[string]{Value: "Z"}
	g := New[string]()
	g.AddVertex(v)

	if v.Degree() != 0 {
		t.Errorf("Degree() = %d, want 0", v.Degree())
	}
	if diff := cmp.Diff([]string{"Z"}, g.BreadthFirstSearch(v)); diff != "" {
		t.Errorf("BreadthFirstSearch mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjacentReturnsCopy(t *testing.T) {
	_, vs := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	adj := vs["A"].Adjacent()
	adj[0] = nil

	if !vs["A"].IsAdjacent(vs["B"]) {
		t.Error("mutating Adjacent() result should not change the vertex")
	}
}

func TestValidate(t *testing.T) {
	t.Run("dangling", func(t *testing.T) {
		g, vs := build(t, []string{"A"}, nil)
		g.AddEdge(vs["A"], NewVertex("outside"))

		err := g.Validate()
		if !errors.Is(err, ErrDanglingAdjacency) {
			t.Fatalf("Validate() = %v, want ErrDanglingAdjacency", err)
		}
	})

	t.Run("asymmetric", func(t *testing.T) {
		g, vs := build(t, []string{"A", "B"}, nil)
		vs["A"].neighbours().add(vs["B"])

		err := g.Validate()
		if !errors.Is(err, ErrAsymmetricAdjacency) {
			t.Fatalf("Validate() = %v, want ErrAsymmetricAdjacency", err)
		}
	})

	t.Run("valid", func(t *testing.T) {
		g, _ := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
		if err := g.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})
}

func TestEdgeCountIgnoresNonMembers(t *testing.T) {
	g, vs := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	g.AddEdge(vs["A"], NewVertex("outside"))

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestVertexSetRemoveKeepsOrder(t *testing.T) {
	s := newVertexSet[int]()
	vs := []*Vertex[int]{NewVertex(0), NewVertex(1), NewVertex(2), NewVertex(3)}
	for _, v := range vs {
		s.add(v)
	}
	if s.add(vs[1]) {
		t.Error("add of existing element should report false")
	}

	if !s.remove(vs[1]) {
		t.Fatal("remove of present element should report true")
	}
	if s.remove(vs[1]) {
		t.Error("second remove should report false")
	}

	var got []int
	for _, v := range s.items() {
		got = append(got, v.Value)
	}
	if diff := cmp.Diff([]int{0, 2, 3}, got); diff != "" {
		t.Errorf("items() mismatch (-want +got):\n%s", diff)
	}
	for i, v := range s.items() {
		if s.index[v] != i {
			t.Errorf("index[%d] = %d, want %d", v.Value, s.index[v], i)
		}
	}
}
