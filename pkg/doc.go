// Package pkg provides the core libraries for lexigraph semantic queries.
//
// # Overview
//
// Lexigraph answers relatedness queries over the WordNet noun hierarchy:
// how far apart two nouns are, which concept subsumes them both, and which
// member of a noun set does not belong. The pkg directory is organized as:
//
//  1. [digraph] - Sparse-id digraph and shortest-common-ancestor search
//  2. [wordnet] - Dataset parsing, vocabulary, and query surface
//  3. [graphio] - JSON interchange format for hypernym graphs
//  4. [cache] - Query result caching (file, Redis, null backends)
//  5. [errors], [observability], [buildinfo] - cross-cutting support
//
// # Architecture
//
// The typical data flow through lexigraph:
//
//	synsets.txt + hypernyms.txt
//	         ↓
//	    [wordnet] package (parse, index vocabulary)
//	         ↓
//	    [digraph] package (hypernym graph + ancestor search)
//	         ↓
//	    distance / sca / outcast answers
//
// # Quick Start
//
// Load a dataset and answer a distance query:
//
//	import "github.com/lexigraph/lexigraph/pkg/wordnet"
//
//	wn, _ := wordnet.Load("synsets.txt", "hypernyms.txt")
//	d, _ := wn.Distance("worm", "bird")
//	gloss, _ := wn.SCA("worm", "bird")
//
// # Main Packages
//
// [digraph] - Directed graph over sparse uint32 ids with dense internal
// indexing. Hosts the dual-source breadth-first ancestor search; queries are
// safe to run concurrently on a frozen graph.
//
// [wordnet] - The lexical database: word-to-synset index, gloss store, and
// the hypernym digraph, built from the two CSV-style input files. Includes
// the outcast finder.
//
// [graphio] - Serialization of hypernym digraphs to a JSON node/edge format
// for the graph export command and the HTTP API.
//
// [cache] - Byte-oriented caches keyed by dataset fingerprint so cached
// answers can never outlive the dataset they were computed from.
package pkg
