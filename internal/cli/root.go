package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lexigraph/lexigraph/pkg/buildinfo"
)

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	configPath string
	data       datasetOpts
}

// config loads the configuration file named by --config (or the default).
func (o *rootOpts) config() (Config, error) {
	return loadConfig(o.configPath)
}

// Execute runs the lexigraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Lexigraph answers semantic relatedness queries over WordNet",
		Long:         `Lexigraph loads the WordNet noun hierarchy and answers relatedness queries: semantic distance between nouns, their shortest common ancestor, and the outcast of a noun set. It can also export the hypernym graph and serve the query API over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./lexigraph.toml)")
	root.PersistentFlags().StringVar(&opts.data.synsets, "synsets", "", "synsets input file")
	root.PersistentFlags().StringVar(&opts.data.hypernyms, "hypernyms", "", "hypernyms input file")

	root.AddCommand(newDistanceCmd(opts))
	root.AddCommand(newSCACmd(opts))
	root.AddCommand(newOutcastCmd(opts))
	root.AddCommand(newNounsCmd(opts))
	root.AddCommand(newGraphCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
