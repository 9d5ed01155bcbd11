package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexigraph/lexigraph/pkg/errors"
	"github.com/lexigraph/lexigraph/pkg/wordnet"
)

// nounsOpts holds the flags for the nouns command.
type nounsOpts struct {
	prefix      string
	list        bool
	interactive bool
}

// newNounsCmd creates the nouns command for vocabulary inspection.
//
// Without arguments it prints dataset statistics. With a word argument it
// reports whether the word is a known noun and lists its synsets. The
// --list flag dumps matching nouns, and --interactive opens a scrollable
// browser.
func newNounsCmd(opts *rootOpts) *cobra.Command {
	var flags nounsOpts

	cmd := &cobra.Command{
		Use:   "nouns [word]",
		Short: "Inspect the noun vocabulary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := loadForQuery(cmd, opts)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return lookupNoun(wn, args[0])
			}
			if flags.interactive {
				return browseNouns(wn, flags.prefix)
			}
			if flags.list {
				return listNouns(wn, flags.prefix)
			}

			printDatasetStats(wn.NounCount(), wn.SynsetCount(), wn.Graph().EdgeCount(), false)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "restrict listing to nouns with this prefix")
	cmd.Flags().BoolVar(&flags.list, "list", false, "list matching nouns")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "browse nouns interactively")

	return cmd
}

// lookupNoun reports whether word is in the vocabulary and lists its synsets.
func lookupNoun(wn *wordnet.WordNet, word string) error {
	if err := errors.ValidateWord(word); err != nil {
		return err
	}

	if !wn.IsNoun(word) {
		printWarning("%q is not in the vocabulary", word)
		return nil
	}

	ids, err := wn.IDs(word)
	if err != nil {
		return err
	}

	printSuccess("%s has %d sense(s)", StyleHighlight.Render(word), len(ids))
	for _, id := range ids {
		gloss, err := wn.Gloss(id)
		if err != nil {
			return err
		}
		printDetail("%d: %s", id, gloss)
	}
	return nil
}

// listNouns prints matching nouns in sorted order.
func listNouns(wn *wordnet.WordNet, prefix string) error {
	nouns := matchingNouns(wn, prefix)
	for _, n := range nouns {
		fmt.Println(n)
	}
	printDetail("%d nouns", len(nouns))
	return nil
}

// matchingNouns collects and sorts nouns matching the prefix filter.
func matchingNouns(wn *wordnet.WordNet, prefix string) []string {
	var nouns []string
	for n := range wn.Nouns() {
		if prefix == "" || strings.HasPrefix(n, prefix) {
			nouns = append(nouns, n)
		}
	}
	sort.Strings(nouns)
	return nouns
}
