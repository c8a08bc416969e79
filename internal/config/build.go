package config

import (
	"github.com/matzehuels/graphwalk/pkg/graph"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
)

// LabeledGraph is a string-valued graph together with a label index.
// Labels are unique, so the index is a bijection between labels and
// member vertices.
type LabeledGraph struct {
	*graph.Graph[string]

	byLabel map[string]*graph.Vertex[string]
}

// Build validates c and constructs its graph. Repeated vertex labels refer
// to the same vertex.
func (c *Config) Build() (*LabeledGraph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lg := &LabeledGraph{
		Graph:   graph.New[string](),
		byLabel: make(map[string]*graph.Vertex[string], len(c.Graph.Vertices)),
	}
	for _, label := range c.Graph.Vertices {
		if _, ok := lg.byLabel[label]; ok {
			continue
		}
		v := graph.NewVertex(label)
		lg.byLabel[label] = v
		lg.AddVertex(v)
	}
	for _, e := range c.Graph.Edges {
		lg.AddEdge(lg.byLabel[e[0]], lg.byLabel[e[1]])
	}
	return lg, nil
}

// Vertex returns the vertex with the given label, or a VERTEX_NOT_FOUND
// error.
func (lg *LabeledGraph) Vertex(label string) (*graph.Vertex[string], error) {
	v, ok := lg.byLabel[label]
	if !ok {
		return nil, gwerrors.New(gwerrors.ErrCodeVertexNotFound, "vertex %q is not in the graph", label)
	}
	return v, nil
}
