package digraph

import (
	"fmt"
	"io"
	"strings"
)

// Digraph is a directed graph keyed by externally-assigned integer ids.
//
// Ids come from the input data and are not required to be contiguous or to
// start at zero. Internally each id is mapped to a dense vertex index the
// first time it appears as an edge endpoint, and adjacency lists are stored
// per dense index. The id↔vertex mapping is fixed once assigned: vertices
// are never renumbered or removed.
//
// The zero value is not usable - use New. A Digraph is built by a sequence
// of AddEdge calls and is then treated as frozen; all query methods are
// read-only and safe for concurrent use once construction has finished.
type Digraph struct {
	adj      [][]uint32        // dense vertex -> out-neighbor vertices, insertion order
	vertexOf map[uint32]uint32 // external id -> dense vertex
	idOf     []uint32          // dense vertex -> external id
	edges    int
}

// New creates an empty Digraph.
func New() *Digraph {
	return &Digraph{vertexOf: make(map[uint32]uint32)}
}

// Reserve pre-allocates internal storage for the expected number of vertices.
// It is purely an optimization hint and has no semantic effect; the graph
// grows past the hint as needed.
func (g *Digraph) Reserve(n int) {
	if n <= len(g.idOf) {
		return
	}
	adj := make([][]uint32, len(g.adj), n)
	copy(adj, g.adj)
	g.adj = adj

	idOf := make([]uint32, len(g.idOf), n)
	copy(idOf, g.idOf)
	g.idOf = idOf
}

// AddEdge appends a directed edge from one external id to another.
// Unseen ids are registered as vertices in encounter order, from before to.
// Repeated edges and self-loops are accepted as-is; nothing is deduplicated.
func (g *Digraph) AddEdge(from, to uint32) {
	v := g.intern(from)
	w := g.intern(to)
	g.adj[v] = append(g.adj[v], w)
	g.edges++
}

// Neighbors returns the out-neighbors of id translated back to external ids,
// preserving edge insertion order. An id that was never registered yields an
// empty slice, indistinguishable from a registered id with no outgoing
// edges; callers that need the distinction should use Contains first.
func (g *Digraph) Neighbors(id uint32) []uint32 {
	v, ok := g.vertexOf[id]
	if !ok {
		return nil
	}
	out := make([]uint32, len(g.adj[v]))
	for i, w := range g.adj[v] {
		out[i] = g.idOf[w]
	}
	return out
}

// Contains reports whether id has been registered as a vertex.
func (g *Digraph) Contains(id uint32) bool {
	_, ok := g.vertexOf[id]
	return ok
}

// VertexCount returns the number of registered vertices.
func (g *Digraph) VertexCount() int { return len(g.idOf) }

// EdgeCount returns the number of edges added, counting duplicates.
func (g *Digraph) EdgeCount() int { return g.edges }

// IDs returns all registered external ids in dense-index (first-seen) order.
func (g *Digraph) IDs() []uint32 {
	ids := make([]uint32, len(g.idOf))
	copy(ids, g.idOf)
	return ids
}

// WriteAdjacency writes a full adjacency dump to w, one line per vertex in
// dense-index order: the vertex id, a colon, then its neighbor ids separated
// by spaces. This is a diagnostic format, not part of the query path.
func (g *Digraph) WriteAdjacency(w io.Writer) error {
	if _, err := io.WriteString(w, "vertex: its neighbours\n"); err != nil {
		return err
	}
	var sb strings.Builder
	for v, targets := range g.adj {
		sb.Reset()
		fmt.Fprintf(&sb, "%d:", g.idOf[v])
		for _, t := range targets {
			fmt.Fprintf(&sb, " %d", g.idOf[t])
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// String returns the adjacency dump produced by WriteAdjacency.
func (g *Digraph) String() string {
	var sb strings.Builder
	_ = g.WriteAdjacency(&sb)
	return sb.String()
}

// intern returns the dense vertex index for id, registering it if unseen.
// Registration assigns index == current vertex count and appends an empty
// adjacency bucket, so the bucket index always equals the dense index.
func (g *Digraph) intern(id uint32) uint32 {
	if v, ok := g.vertexOf[id]; ok {
		return v
	}
	v := uint32(len(g.idOf))
	g.vertexOf[id] = v
	g.idOf = append(g.idOf, id)
	g.adj = append(g.adj, nil)
	return v
}

// vertex looks up the dense index for id without registering it.
func (g *Digraph) vertex(id uint32) (uint32, bool) {
	v, ok := g.vertexOf[id]
	return v, ok
}
