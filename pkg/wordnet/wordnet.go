package wordnet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/lexigraph/lexigraph/pkg/digraph"
)

var (
	// ErrUnknownWord is returned by queries that reference a word not present
	// in the synset vocabulary.
	ErrUnknownWord = errors.New("unknown word")

	// ErrUnknownSynset is returned by Gloss for an id with no synset record.
	ErrUnknownSynset = errors.New("unknown synset id")
)

// maxLineSize bounds a single input line. Glosses are free text, so the
// scanner buffer is raised well past bufio's 64K default.
const maxLineSize = 1 << 20

// WordNet is a lexical database: a vocabulary mapping words to synset ids, a
// gloss store mapping ids to definition text, and a hypernym digraph over
// the ids. A word can belong to several synsets (polysemy), which is why the
// word index maps to id sets and ancestor queries run set-to-set.
//
// A WordNet is immutable after New returns and safe for concurrent queries.
type WordNet struct {
	words   map[string][]uint32
	glosses map[uint32]string
	graph   *digraph.Digraph
	sca     *digraph.ShortestCommonAncestor
}

// New builds a WordNet from its two textual inputs.
//
// synsets carries one record per line, "id,word1 word2 ...,gloss"; the gloss
// runs to the end of the line and may itself contain commas. hypernyms
// carries "id,hyper1,hyper2,..." edge lists; a line without any hypernym ids
// contributes nothing. Blank lines are skipped in both inputs.
func New(synsets, hypernyms io.Reader) (*WordNet, error) {
	wn := &WordNet{
		words:   make(map[string][]uint32),
		glosses: make(map[uint32]string),
		graph:   digraph.New(),
	}

	count, err := wn.parseSynsets(synsets)
	if err != nil {
		return nil, err
	}

	wn.graph.Reserve(count)
	if err := wn.parseHypernyms(hypernyms); err != nil {
		return nil, err
	}

	wn.sca = digraph.NewShortestCommonAncestor(wn.graph)
	return wn, nil
}

// Load builds a WordNet from the two input files.
func Load(synsetsPath, hypernymsPath string) (*WordNet, error) {
	sf, err := os.Open(synsetsPath)
	if err != nil {
		return nil, fmt.Errorf("open synsets: %w", err)
	}
	defer sf.Close()

	hf, err := os.Open(hypernymsPath)
	if err != nil {
		return nil, fmt.Errorf("open hypernyms: %w", err)
	}
	defer hf.Close()

	wn, err := New(sf, hf)
	if err != nil {
		return nil, err
	}
	return wn, nil
}

// parseSynsets fills the word index and gloss store, returning the number of
// synset records for the graph capacity hint.
func (w *WordNet) parseSynsets(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	count := 0
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}

		idField, rest, ok := strings.Cut(line, ",")
		if !ok {
			return 0, fmt.Errorf("synsets line %d: missing word field", lineNo)
		}
		wordField, gloss, ok := strings.Cut(rest, ",")
		if !ok {
			return 0, fmt.Errorf("synsets line %d: missing gloss field", lineNo)
		}

		id, err := parseID(idField)
		if err != nil {
			return 0, fmt.Errorf("synsets line %d: %w", lineNo, err)
		}

		for _, word := range strings.Fields(wordField) {
			w.words[word] = append(w.words[word], id)
		}
		w.glosses[id] = gloss
		count++
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read synsets: %w", err)
	}
	return count, nil
}

// parseHypernyms adds one edge per hypernym id on each line. Lines carrying
// only a synset id (no commas) are skipped without registering the id.
func (w *WordNet) parseHypernyms(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}

		fromField, rest, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		from, err := parseID(fromField)
		if err != nil {
			return fmt.Errorf("hypernyms line %d: %w", lineNo, err)
		}

		for rest != "" {
			toField, tail, _ := strings.Cut(rest, ",")
			to, err := parseID(toField)
			if err != nil {
				return fmt.Errorf("hypernyms line %d: %w", lineNo, err)
			}
			w.graph.AddEdge(from, to)
			rest = tail
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read hypernyms: %w", err)
	}
	return nil
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid synset id %q", s)
	}
	return uint32(id), nil
}

// IsNoun reports whether word is present in the vocabulary.
func (w *WordNet) IsNoun(word string) bool {
	_, ok := w.words[word]
	return ok
}

// Nouns iterates over every word stored in the vocabulary, in no particular
// order.
func (w *WordNet) Nouns() iter.Seq[string] {
	return maps.Keys(w.words)
}

// NounCount returns the number of distinct words in the vocabulary.
func (w *WordNet) NounCount() int { return len(w.words) }

// SynsetCount returns the number of synset records parsed.
func (w *WordNet) SynsetCount() int { return len(w.glosses) }

// IDs returns the synset ids word belongs to, or ErrUnknownWord. The
// returned slice must not be modified.
func (w *WordNet) IDs(word string) ([]uint32, error) {
	ids, ok := w.words[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return ids, nil
}

// Gloss returns the definition text for a synset id.
func (w *WordNet) Gloss(id uint32) (string, error) {
	gloss, ok := w.glosses[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownSynset, id)
	}
	return gloss, nil
}

// Graph exposes the hypernym digraph for diagnostics (adjacency dumps, DOT
// export). The graph is frozen; callers must not add edges.
func (w *WordNet) Graph() *digraph.Digraph { return w.graph }

// AncestorLength resolves both words to their synset id sets and runs the
// set-to-set shortest-common-ancestor search.
func (w *WordNet) AncestorLength(noun1, noun2 string) (digraph.Result, error) {
	a, err := w.IDs(noun1)
	if err != nil {
		return digraph.Result{}, err
	}
	b, err := w.IDs(noun2)
	if err != nil {
		return digraph.Result{}, err
	}
	return w.sca.AncestorLength(a, b)
}

// Distance returns the semantic distance between two words: the combined
// path length to their shortest common ancestor.
func (w *WordNet) Distance(noun1, noun2 string) (int, error) {
	res, err := w.AncestorLength(noun1, noun2)
	if err != nil {
		return 0, err
	}
	return res.Length, nil
}

// SCA returns the gloss of the shortest common ancestor of two words.
func (w *WordNet) SCA(noun1, noun2 string) (string, error) {
	res, err := w.AncestorLength(noun1, noun2)
	if err != nil {
		return "", err
	}
	return w.Gloss(res.Ancestor)
}
