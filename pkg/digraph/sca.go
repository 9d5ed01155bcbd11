package digraph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownID is returned by the ancestor queries when a subset
	// references an id that was never registered in the graph. The graph's
	// own Neighbors method cannot distinguish unknown ids from ids with no
	// edges, so queries fail loudly instead.
	ErrUnknownID = errors.New("unknown vertex id")

	// ErrEmptySubset is returned when a query subset contains no ids.
	ErrEmptySubset = errors.New("query subset is empty")

	// ErrNoCommonAncestor is returned when the two subsets have no vertex
	// reachable from both, i.e. they live in disconnected parts of the graph.
	ErrNoCommonAncestor = errors.New("no common ancestor")
)

// Result is the outcome of a shortest-common-ancestor query: the ancestor's
// external id and the combined length of the two paths reaching it.
type Result struct {
	Ancestor uint32
	Length   int
}

// ShortestCommonAncestor answers shortest-common-ancestor queries against a
// built Digraph. It holds a non-owning reference to the graph and no other
// state; all scratch space is allocated per call, so a single value can
// serve concurrent queries as long as nobody mutates the graph.
//
// Correctness of the single-pass search relies on the graph being a DAG
// whose edges point from specific concepts toward more general ones. See the
// package documentation for the exact assumption.
type ShortestCommonAncestor struct {
	g *Digraph
}

// NewShortestCommonAncestor binds a query object to g. The graph must be
// fully built; edges added afterwards invalidate concurrent-use guarantees.
func NewShortestCommonAncestor(g *Digraph) *ShortestCommonAncestor {
	return &ShortestCommonAncestor{g: g}
}

// Frontier colors for the dual-wave search.
const (
	unvisited uint8 = iota
	fromA
	fromB
)

// AncestorLength finds the vertex reachable from both subsets whose combined
// path length is minimal, together with that length.
//
// Both subsets must be non-empty and every id must be registered in the
// graph; violations return ErrEmptySubset or a wrapped ErrUnknownID. A
// vertex present in both subsets is its own ancestor at distance zero. If
// the subsets are disconnected, ErrNoCommonAncestor is returned.
//
// The search is a single shared-queue BFS over both frontiers: subset A
// seeds with one color, subset B with the other, and each vertex keeps the
// color and distance of whichever wave reaches it first. Every collision
// between opposite colors proposes a candidate total length, and the
// smallest one wins.
func (s *ShortestCommonAncestor) AncestorLength(subsetA, subsetB []uint32) (Result, error) {
	if len(subsetA) == 0 || len(subsetB) == 0 {
		return Result{}, ErrEmptySubset
	}

	n := s.g.VertexCount()
	color := make([]uint8, n)
	distance := make([]int, n)
	queue := make([]uint32, 0, len(subsetA)+len(subsetB))

	for _, id := range subsetA {
		v, ok := s.g.vertex(id)
		if !ok {
			return Result{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
		}
		color[v] = fromA
		queue = append(queue, v)
	}
	for _, id := range subsetB {
		v, ok := s.g.vertex(id)
		if !ok {
			return Result{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
		}
		if color[v] == fromA {
			// Shared seed: the vertex is an ancestor of itself.
			return Result{Ancestor: id, Length: 0}, nil
		}
		color[v] = fromB
		queue = append(queue, v)
	}

	best := Result{Length: -1}
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, to := range s.g.adj[v] {
			switch {
			case color[to] == unvisited:
				color[to] = color[v]
				distance[to] = distance[v] + 1
				queue = append(queue, to)
			case color[to] != color[v]:
				total := distance[to] + distance[v] + 1
				if best.Length < 0 || total < best.Length {
					best = Result{Ancestor: s.g.idOf[to], Length: total}
				}
			}
		}
	}

	if best.Length < 0 {
		return Result{}, ErrNoCommonAncestor
	}
	return best, nil
}

// Ancestor returns the shortest common ancestor of two single vertices.
func (s *ShortestCommonAncestor) Ancestor(v, w uint32) (uint32, error) {
	res, err := s.AncestorLength([]uint32{v}, []uint32{w})
	if err != nil {
		return 0, err
	}
	return res.Ancestor, nil
}

// Length returns the length of the shortest ancestral path between two
// single vertices.
func (s *ShortestCommonAncestor) Length(v, w uint32) (int, error) {
	res, err := s.AncestorLength([]uint32{v}, []uint32{w})
	if err != nil {
		return 0, err
	}
	return res.Length, nil
}
