package digraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the graph.
//
// Vertices are labeled with their external ids and emitted in dense-index
// order, edges in insertion order, so the output is deterministic for a
// given build sequence. The result can be rendered with the Graphviz tools
// (dot, neato, ...) or programmatically with RenderSVG.
func (g *Digraph) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph hypernyms {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n\n")

	for v := range g.adj {
		fmt.Fprintf(&buf, "  n%d [label=\"%d\"];\n", v, g.idOf[v])
	}
	buf.WriteByte('\n')
	for v, targets := range g.adj {
		for _, t := range targets {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", v, t)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the graph as an SVG image via Graphviz.
//
// RenderSVG generates a DOT representation with ToDOT, then uses the
// embedded Graphviz engine to lay it out. The returned bytes are a complete
// SVG document. Errors are returned if Graphviz cannot initialize, the DOT
// is malformed, or rendering fails; all are wrapped with %w for errors.Is.
//
// Rendering is O(vertices + edges) in memory on top of the layout cost, so
// this is intended for inspecting small graphs or test fixtures, not full
// lexical databases.
func (g *Digraph) RenderSVG(ctx context.Context) ([]byte, error) {
	dot := g.ToDOT()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
