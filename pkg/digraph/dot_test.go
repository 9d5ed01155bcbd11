package digraph

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	g.AddEdge(3, 2)

	dot := g.ToDOT()

	if !strings.HasPrefix(dot, "digraph hypernyms {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	for _, want := range []string{
		`n0 [label="1"]`,
		`n1 [label="2"]`,
		`n2 [label="3"]`,
		"n0 -> n1;",
		"n2 -> n1;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("DOT output not closed:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := New().ToDOT()
	if !strings.Contains(dot, "digraph hypernyms {") {
		t.Errorf("unexpected DOT for empty graph:\n%s", dot)
	}
}
