package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexigraph/lexigraph/internal/server"
)

// defaultAddr is the listen address used when neither the flag nor the
// config file sets one.
const defaultAddr = ":8080"

// newServeCmd creates the serve command running the HTTP query API.
func newServeCmd(opts *rootOpts) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := opts.config()
			if err != nil {
				return err
			}

			wn, hash, err := loadDataset(ctx, cfg, &opts.data)
			if err != nil {
				return err
			}

			listen := addr
			if listen == "" {
				listen = cfg.Server.Addr
			}
			if listen == "" {
				listen = defaultAddr
			}

			c := newQueryCache(ctx, cfg.Cache)
			defer c.Close()

			srv := server.New(wn, server.Config{
				Addr:        listen,
				Cache:       c,
				DatasetHash: hash,
				Logger:      logger,
			})

			printInfo("Serving on %s", StyleHighlight.Render(listen))
			printDatasetStats(wn.NounCount(), wn.SynsetCount(), wn.Graph().EdgeCount(), false)

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")

	return cmd
}
