package graphio

import (
	"fmt"

	"github.com/lexigraph/lexigraph/pkg/digraph"
)

// Graph is the canonical serialization format for hypernym digraphs.
// Used for API responses, caching, and interchange with other tools.
//
// The format is designed for round-trip fidelity: export → re-import
// preserves the vertex set and every adjacency list in order. Nodes appear
// in dense registration order, edges grouped by source vertex.
type Graph struct {
	Nodes []uint32 `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// Edge represents a directed hypernym edge between two external ids.
type Edge struct {
	From uint32 `json:"from"`
	To   uint32 `json:"to"`
}

// FromDigraph converts a built digraph to its serialization format.
func FromDigraph(g *digraph.Digraph) Graph {
	out := Graph{
		Nodes: g.IDs(),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for _, id := range out.Nodes {
		for _, to := range g.Neighbors(id) {
			out.Edges = append(out.Edges, Edge{From: id, To: to})
		}
	}
	return out
}

// ToDigraph rebuilds a digraph from its serialization format by replaying
// the stored edges. The vertex set and all adjacency lists come back
// exactly; the internal dense numbering may be permuted, which no query
// observes. Returns an error if the node list disagrees with the vertices
// the edges register; a digraph cannot hold vertices that no edge touches.
func ToDigraph(gj Graph) (*digraph.Digraph, error) {
	g := digraph.New()
	g.Reserve(len(gj.Nodes))
	for _, e := range gj.Edges {
		g.AddEdge(e.From, e.To)
	}

	if g.VertexCount() != len(gj.Nodes) {
		return nil, fmt.Errorf("node list has %d entries, edges register %d vertices", len(gj.Nodes), g.VertexCount())
	}
	for _, id := range gj.Nodes {
		if !g.Contains(id) {
			return nil, fmt.Errorf("node %d not referenced by any edge", id)
		}
	}
	return g, nil
}
