package digraph

import (
	"slices"
	"strings"
	"testing"
)

func TestAddEdgeRegistration(t *testing.T) {
	tests := []struct {
		name         string
		edges        [][2]uint32
		wantVertices int
		wantEdges    int
	}{
		{
			name:         "Empty",
			wantVertices: 0,
			wantEdges:    0,
		},
		{
			name:         "Single",
			edges:        [][2]uint32{{1, 2}},
			wantVertices: 2,
			wantEdges:    1,
		},
		{
			name:         "SharedTarget",
			edges:        [][2]uint32{{1, 2}, {3, 2}},
			wantVertices: 3,
			wantEdges:    2,
		},
		{
			name:         "DuplicateEdgesKept",
			edges:        [][2]uint32{{1, 2}, {1, 2}, {1, 2}},
			wantVertices: 2,
			wantEdges:    3,
		},
		{
			name:         "SelfLoop",
			edges:        [][2]uint32{{7, 7}},
			wantVertices: 1,
			wantEdges:    1,
		},
		{
			name:         "SparseIDs",
			edges:        [][2]uint32{{1000000, 42}, {42, 7}, {7, 1000000}},
			wantVertices: 3,
			wantEdges:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1])
			}
			if got := g.VertexCount(); got != tt.wantVertices {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVertices)
			}
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestNeighborsOrder(t *testing.T) {
	g := New()
	g.AddEdge(1, 5)
	g.AddEdge(1, 7)
	g.AddEdge(1, 5)

	got := g.Neighbors(1)
	want := []uint32{5, 7, 5}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(1) = %v, want %v", got, want)
	}
}

func TestNeighborsUnknownID(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)

	// Unknown id and a registered sink both yield an empty sequence; only
	// Contains tells them apart. This ambiguity is part of the contract.
	if got := g.Neighbors(99); len(got) != 0 {
		t.Errorf("Neighbors(99) = %v, want empty", got)
	}
	if got := g.Neighbors(2); len(got) != 0 {
		t.Errorf("Neighbors(2) = %v, want empty", got)
	}
	if g.Contains(99) {
		t.Error("Contains(99) = true, want false")
	}
	if !g.Contains(2) {
		t.Error("Contains(2) = false, want true")
	}
}

func TestReserveIsTransparent(t *testing.T) {
	plain := New()
	hinted := New()
	hinted.Reserve(100)

	edges := [][2]uint32{{10, 20}, {30, 20}, {20, 40}}
	for _, e := range edges {
		plain.AddEdge(e[0], e[1])
		hinted.AddEdge(e[0], e[1])
	}
	// Undersized hint after the fact must also be a no-op.
	hinted.Reserve(1)

	if plain.VertexCount() != hinted.VertexCount() {
		t.Errorf("vertex counts differ: %d vs %d", plain.VertexCount(), hinted.VertexCount())
	}
	if !slices.Equal(plain.IDs(), hinted.IDs()) {
		t.Errorf("id orders differ: %v vs %v", plain.IDs(), hinted.IDs())
	}
	if !slices.Equal(plain.Neighbors(20), hinted.Neighbors(20)) {
		t.Errorf("neighbors differ: %v vs %v", plain.Neighbors(20), hinted.Neighbors(20))
	}
}

func TestIDsFirstSeenOrder(t *testing.T) {
	g := New()
	g.AddEdge(5, 3)
	g.AddEdge(3, 9)
	g.AddEdge(1, 5)

	want := []uint32{5, 3, 9, 1}
	if got := g.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestWriteAdjacency(t *testing.T) {
	g := New()
	g.AddEdge(1, 5)
	g.AddEdge(1, 7)
	g.AddEdge(7, 5)

	var sb strings.Builder
	if err := g.WriteAdjacency(&sb); err != nil {
		t.Fatalf("WriteAdjacency: %v", err)
	}

	want := "vertex: its neighbours\n" +
		"1: 5 7\n" +
		"5:\n" +
		"7: 5\n"
	if got := sb.String(); got != want {
		t.Errorf("adjacency dump = %q, want %q", got, want)
	}

	if g.String() != sb.String() {
		t.Error("String() does not match WriteAdjacency output")
	}
}
