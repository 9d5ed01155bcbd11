package digraph

import (
	"errors"
	"sync"
	"testing"
)

// buildGraph constructs a graph from an edge list.
func buildGraph(edges [][2]uint32) *Digraph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// hierarchy is a small hypernym-shaped fixture:
//
//	11 12   13 14
//	  \ |    | /
//	    5    6
//	     \  /
//	      1
var hierarchy = [][2]uint32{
	{11, 5}, {12, 5},
	{13, 6}, {14, 6},
	{5, 1}, {6, 1},
}

func TestAncestorLength(t *testing.T) {
	tests := []struct {
		name         string
		edges        [][2]uint32
		a, b         []uint32
		wantAncestor uint32
		wantLength   int
	}{
		{
			name:         "SameVertex",
			edges:        [][2]uint32{{1, 2}},
			a:            []uint32{1},
			b:            []uint32{1},
			wantAncestor: 1,
			wantLength:   0,
		},
		{
			name:         "SharedSeedAcrossSubsets",
			edges:        hierarchy,
			a:            []uint32{11, 5},
			b:            []uint32{5, 13},
			wantAncestor: 5,
			wantLength:   0,
		},
		{
			name:         "Siblings",
			edges:        [][2]uint32{{1, 2}, {3, 2}},
			a:            []uint32{1},
			b:            []uint32{3},
			wantAncestor: 2,
			wantLength:   2,
		},
		{
			name:         "DirectHypernym",
			edges:        [][2]uint32{{1, 2}, {3, 2}},
			a:            []uint32{1},
			b:            []uint32{2},
			wantAncestor: 2,
			wantLength:   1,
		},
		{
			name:         "Chain",
			edges:        [][2]uint32{{1, 2}, {2, 3}, {3, 4}},
			a:            []uint32{1},
			b:            []uint32{4},
			wantAncestor: 4,
			wantLength:   3,
		},
		{
			name:         "CousinsThroughRoot",
			edges:        hierarchy,
			a:            []uint32{11},
			b:            []uint32{13},
			wantAncestor: 1,
			wantLength:   4,
		},
		{
			name:         "SubsetPicksClosestSense",
			edges:        hierarchy,
			a:            []uint32{11, 13},
			b:            []uint32{12},
			wantAncestor: 5,
			wantLength:   2,
		},
		{
			name:         "NearerAncestorWinsOverRoot",
			edges:        hierarchy,
			a:            []uint32{11},
			b:            []uint32{12},
			wantAncestor: 5,
			wantLength:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sca := NewShortestCommonAncestor(buildGraph(tt.edges))

			res, err := sca.AncestorLength(tt.a, tt.b)
			if err != nil {
				t.Fatalf("AncestorLength: %v", err)
			}
			if res.Ancestor != tt.wantAncestor {
				t.Errorf("ancestor = %d, want %d", res.Ancestor, tt.wantAncestor)
			}
			if res.Length != tt.wantLength {
				t.Errorf("length = %d, want %d", res.Length, tt.wantLength)
			}

			// Lengths are symmetric under swapping the subsets; the reported
			// ancestor may differ only when several are tied.
			swapped, err := sca.AncestorLength(tt.b, tt.a)
			if err != nil {
				t.Fatalf("AncestorLength swapped: %v", err)
			}
			if swapped.Length != res.Length {
				t.Errorf("swapped length = %d, want %d", swapped.Length, res.Length)
			}
		})
	}
}

func TestAncestorLengthErrors(t *testing.T) {
	disconnected := [][2]uint32{{1, 2}, {3, 4}}

	tests := []struct {
		name    string
		edges   [][2]uint32
		a, b    []uint32
		wantErr error
	}{
		{"UnknownIDInA", hierarchy, []uint32{999}, []uint32{11}, ErrUnknownID},
		{"UnknownIDInB", hierarchy, []uint32{11}, []uint32{999}, ErrUnknownID},
		{"EmptySubsetA", hierarchy, nil, []uint32{11}, ErrEmptySubset},
		{"EmptySubsetB", hierarchy, []uint32{11}, nil, ErrEmptySubset},
		{"Disconnected", disconnected, []uint32{1}, []uint32{3}, ErrNoCommonAncestor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sca := NewShortestCommonAncestor(buildGraph(tt.edges))
			_, err := sca.AncestorLength(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAncestorAndLengthHelpers(t *testing.T) {
	sca := NewShortestCommonAncestor(buildGraph(hierarchy))

	anc, err := sca.Ancestor(11, 12)
	if err != nil {
		t.Fatalf("Ancestor: %v", err)
	}
	if anc != 5 {
		t.Errorf("Ancestor(11, 12) = %d, want 5", anc)
	}

	length, err := sca.Length(11, 14)
	if err != nil {
		t.Fatalf("Length: %v", err)
	}
	if length != 4 {
		t.Errorf("Length(11, 14) = %d, want 4", length)
	}
}

func TestAncestorLengthDoesNotMutateGraph(t *testing.T) {
	g := buildGraph(hierarchy)
	sca := NewShortestCommonAncestor(g)

	before := g.String()
	for i := 0; i < 10; i++ {
		if _, err := sca.AncestorLength([]uint32{11}, []uint32{13}); err != nil {
			t.Fatalf("AncestorLength: %v", err)
		}
	}
	if after := g.String(); after != before {
		t.Errorf("graph changed across queries:\nbefore: %q\nafter: %q", before, after)
	}
}

func TestConcurrentQueries(t *testing.T) {
	g := buildGraph(hierarchy)
	sca := NewShortestCommonAncestor(g)

	queries := [][2][]uint32{
		{{11}, {12}},
		{{11}, {13}},
		{{12}, {14}},
		{{11, 13}, {12}},
		{{5}, {6}},
		{{11}, {1}},
	}

	// Sequential baseline.
	want := make([]Result, len(queries))
	for i, q := range queries {
		res, err := sca.AncestorLength(q[0], q[1])
		if err != nil {
			t.Fatalf("baseline query %d: %v", i, err)
		}
		want[i] = res
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers*len(queries))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, q := range queries {
				res, err := sca.AncestorLength(q[0], q[1])
				if err != nil {
					errs <- err
					continue
				}
				if res != want[i] {
					errs <- errors.New("concurrent result differs from sequential")
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent query: %v", err)
	}
}
