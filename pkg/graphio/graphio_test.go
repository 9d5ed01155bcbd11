package graphio

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/lexigraph/lexigraph/pkg/digraph"
)

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *digraph.Digraph
		wantNodes int
		wantEdges int
		check     func(t *testing.T, g Graph)
	}{
		{
			name:      "Empty",
			build:     digraph.New,
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name: "Simple",
			build: func() *digraph.Digraph {
				g := digraph.New()
				g.AddEdge(1, 2)
				return g
			},
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name: "Diamond",
			build: func() *digraph.Digraph {
				g := digraph.New()
				g.AddEdge(11, 5)
				g.AddEdge(12, 5)
				g.AddEdge(5, 1)
				return g
			},
			wantNodes: 4,
			wantEdges: 3,
			check: func(t *testing.T, g Graph) {
				if !slices.Equal(g.Nodes, []uint32{11, 5, 12, 1}) {
					t.Errorf("nodes = %v, want first-seen order [11 5 12 1]", g.Nodes)
				}
			},
		},
		{
			name: "DuplicateEdgesKept",
			build: func() *digraph.Digraph {
				g := digraph.New()
				g.AddEdge(1, 2)
				g.AddEdge(1, 2)
				return g
			},
			wantNodes: 2,
			wantEdges: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalGraph(tt.build())
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var result Graph
			if err := json.Unmarshal(data, &result); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got := len(result.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(result.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, g *digraph.Digraph)
	}{
		{
			name:  "Valid",
			input: `{"nodes": [1, 2, 3], "edges": [{"from": 1, "to": 2}, {"from": 3, "to": 2}]}`,
			check: func(t *testing.T, g *digraph.Digraph) {
				if g.VertexCount() != 3 {
					t.Errorf("vertices = %d, want 3", g.VertexCount())
				}
				if !slices.Equal(g.Neighbors(1), []uint32{2}) {
					t.Errorf("Neighbors(1) = %v, want [2]", g.Neighbors(1))
				}
			},
		},
		{
			name:  "Empty",
			input: `{"nodes": [], "edges": []}`,
			check: func(t *testing.T, g *digraph.Digraph) {
				if g.VertexCount() != 0 {
					t.Errorf("vertices = %d, want 0", g.VertexCount())
				}
			},
		},
		{
			name:    "InvalidJSON",
			input:   `{invalid json}`,
			wantErr: true,
		},
		{
			name:    "NodeWithoutEdges",
			input:   `{"nodes": [1, 2, 99], "edges": [{"from": 1, "to": 2}]}`,
			wantErr: true,
		},
		{
			name:    "UnlistedVertex",
			input:   `{"nodes": [1], "edges": [{"from": 1, "to": 2}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGraph(strings.NewReader(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadGraph: %v", err)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	g := digraph.New()
	g.AddEdge(11, 5)
	g.AddEdge(12, 5)
	g.AddEdge(5, 1)
	g.AddEdge(5, 1) // duplicate kept

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	back, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	if back.VertexCount() != g.VertexCount() {
		t.Errorf("vertices = %d, want %d", back.VertexCount(), g.VertexCount())
	}
	if back.EdgeCount() != g.EdgeCount() {
		t.Errorf("edges = %d, want %d", back.EdgeCount(), g.EdgeCount())
	}
	for _, id := range g.IDs() {
		if !slices.Equal(back.Neighbors(id), g.Neighbors(id)) {
			t.Errorf("Neighbors(%d) = %v, want %v", id, back.Neighbors(id), g.Neighbors(id))
		}
	}
}

func TestWriteAndReadGraphFile(t *testing.T) {
	g := digraph.New()
	g.AddEdge(1, 2)

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	back, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if back.VertexCount() != 2 {
		t.Errorf("vertices = %d, want 2", back.VertexCount())
	}
}

func TestReadGraphFileNotFound(t *testing.T) {
	if _, err := ReadGraphFile("nonexistent.json"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
