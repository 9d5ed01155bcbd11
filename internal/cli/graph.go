package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexigraph/lexigraph/pkg/digraph"
	"github.com/lexigraph/lexigraph/pkg/errors"
	"github.com/lexigraph/lexigraph/pkg/graphio"
)

// Graph export formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

var graphFormats = []string{formatText, formatJSON, formatDOT, formatSVG}

// graphOpts holds the flags for the graph command.
type graphOpts struct {
	format string
	output string
}

// newGraphCmd creates the graph command for exporting the hypernym digraph.
//
// Formats:
//   - text: adjacency listing, one synset per line
//   - json: node/edge interchange format
//   - dot:  Graphviz source
//   - svg:  rendered Graphviz image
func newGraphCmd(opts *rootOpts) *cobra.Command {
	flags := graphOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the hypernym digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateOutputFormat(flags.format, graphFormats); err != nil {
				return err
			}

			wn, err := loadForQuery(cmd, opts)
			if err != nil {
				return err
			}

			out, err := openOutput(flags.output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := exportGraph(cmd, wn.Graph(), flags.format, out); err != nil {
				return err
			}
			if flags.output != "" {
				printSuccess("Wrote %s graph", flags.format)
				printFile(flags.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", flags.format, "output format (text|json|dot|svg)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func exportGraph(cmd *cobra.Command, g *digraph.Digraph, format string, out io.Writer) error {
	switch format {
	case formatText:
		return g.WriteAdjacency(out)
	case formatJSON:
		return graphio.WriteGraph(g, out)
	case formatDOT:
		_, err := io.WriteString(out, g.ToDOT())
		return err
	case formatSVG:
		svg, err := g.RenderSVG(cmd.Context())
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		_, err = out.Write(svg)
		return err
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
