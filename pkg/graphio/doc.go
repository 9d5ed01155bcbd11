// Package graphio serializes hypernym digraphs to and from a JSON
// interchange format.
//
// The format lists external ids only; internal dense indices never leave the
// digraph package. See [Graph] for the structure and the round-trip
// guarantees, and [MarshalGraph] / [ReadGraph] for the entry points.
package graphio
