// Package digraph provides a directed graph over sparse external ids and a
// shortest-common-ancestor search used for semantic-distance queries over
// hypernym hierarchies.
//
// # Overview
//
// Input data assigns every concept an arbitrary non-negative integer id.
// [Digraph] maps each id to a dense internal vertex index on first use, so
// adjacency lists and per-query scratch arrays can be flat slices instead of
// hash maps. The mapping is append-only: once an id is registered its index
// never changes, and vertices are never removed.
//
// The lifecycle is build-then-freeze. Construction is sequential (edge
// registration order determines index assignment); afterwards the graph is
// read-only and any number of goroutines may query it concurrently.
//
// # Basic Usage
//
//	g := digraph.New()
//	g.Reserve(3)
//	g.AddEdge(1, 2)
//	g.AddEdge(3, 2)
//
//	sca := digraph.NewShortestCommonAncestor(g)
//	res, err := sca.AncestorLength([]uint32{1}, []uint32{3})
//	// res.Ancestor == 2, res.Length == 2
//
// # Ancestor Search
//
// [ShortestCommonAncestor.AncestorLength] runs a single FIFO breadth-first
// search with two colored frontiers, one per query subset. A vertex belongs
// to whichever wave reaches it first; whenever the two waves collide the
// collision vertex proposes a candidate ancestor with the combined distance
// of both paths, and the minimum over all collisions is returned.
//
// This single-pass scheme is correct when edges point strictly from specific
// concepts to more general ones, i.e. the graph is a DAG oriented toward its
// roots. The package does not validate acyclicity; feeding it a graph with
// cycles or long cross edges can under- or over-estimate path lengths. Use a
// bidirectional Dijkstra instead if arbitrary graphs are expected.
//
// # Diagnostics
//
// [Digraph.WriteAdjacency] dumps the full adjacency structure in a stable
// line-oriented format, and [Digraph.ToDOT] / [Digraph.RenderSVG] produce
// Graphviz output for visual inspection. Neither is part of the query path.
package digraph
