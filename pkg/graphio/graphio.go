package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lexigraph/lexigraph/pkg/digraph"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a digraph to JSON bytes.
func MarshalGraph(g *digraph.Digraph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// WriteGraph writes a digraph as JSON to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(g *digraph.Digraph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// WriteGraphFile writes a digraph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *digraph.Digraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader into a digraph.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (*digraph.Digraph, error) {
	return readGraphFrom(r)
}

// ReadGraphFile reads a JSON file and returns the decoded digraph.
func ReadGraphFile(path string) (*digraph.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeGraphTo(g *digraph.Digraph, w io.Writer) error {
	out := FromDigraph(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*digraph.Digraph, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToDigraph(data)
}
