// Package wordnet parses a synset/hypernym lexical database and answers
// semantic-distance queries over it.
//
// # Inputs
//
// Two comma-separated text files describe the database. The synsets file has
// one record per line:
//
//	id,word1 word2 ...,gloss text which may itself contain, commas
//
// The hypernyms file lists, per line, a synset id followed by the ids of its
// hypernyms (more general concepts):
//
//	164,21012,56099
//
// Edges therefore run from specific to general, forming the rooted DAG that
// [github.com/lexigraph/lexigraph/pkg/digraph] assumes.
//
// # Queries
//
// [WordNet.Distance] and [WordNet.SCA] resolve each word to its set of
// synset ids (a polysemous word maps to several) and run a single
// set-to-set shortest-common-ancestor search; the point-to-point case is
// just the singleton-set case. [Outcast] builds on Distance to pick the
// least related word of a group.
//
// A WordNet is immutable once built and safe for concurrent queries.
package wordnet
