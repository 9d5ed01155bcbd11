package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexigraph/lexigraph/pkg/errors"
	"github.com/lexigraph/lexigraph/pkg/wordnet"
)

// newDistanceCmd creates the distance command.
// Example: "lexigraph distance worm bird" prints the combined path length to
// the shortest common ancestor of the two nouns.
func newDistanceCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <noun1> <noun2>",
		Short: "Semantic distance between two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateWords(args); err != nil {
				return err
			}
			wn, err := loadForQuery(cmd, opts)
			if err != nil {
				return err
			}

			d, err := wn.Distance(args[0], args[1])
			if err != nil {
				return err
			}
			printKeyValue("distance", fmt.Sprintf("%d", d))
			return nil
		},
	}
}

// newSCACmd creates the sca command, printing the shortest common ancestor
// synset with its gloss.
func newSCACmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "sca <noun1> <noun2>",
		Short: "Shortest common ancestor of two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateWords(args); err != nil {
				return err
			}
			wn, err := loadForQuery(cmd, opts)
			if err != nil {
				return err
			}

			res, err := wn.AncestorLength(args[0], args[1])
			if err != nil {
				return err
			}
			gloss, err := wn.Gloss(res.Ancestor)
			if err != nil {
				return err
			}

			printKeyValue("ancestor", fmt.Sprintf("%d", res.Ancestor))
			printKeyValue("length", fmt.Sprintf("%d", res.Length))
			printKeyValue("gloss", gloss)
			return nil
		},
	}
}

// newOutcastCmd creates the outcast command.
// Example: "lexigraph outcast horse zebra cat bear tiger" names the noun
// least related to the rest.
func newOutcastCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "outcast <noun>...",
		Short: "Find the least related noun of a set",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateWords(args); err != nil {
				return err
			}
			wn, err := loadForQuery(cmd, opts)
			if err != nil {
				return err
			}

			out, err := wordnet.NewOutcast(wn).Find(args)
			if err != nil {
				return err
			}
			if out == "" {
				printInfo("No unique outcast among: %s", strings.Join(args, ", "))
				return nil
			}
			printSuccess("Outcast: %s", StyleHighlight.Render(out))
			return nil
		},
	}
}

// loadForQuery loads the dataset for a one-shot query command.
func loadForQuery(cmd *cobra.Command, opts *rootOpts) (*wordnet.WordNet, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	wn, _, err := loadDataset(cmd.Context(), cfg, &opts.data)
	return wn, err
}
