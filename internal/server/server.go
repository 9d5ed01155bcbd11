// Package server implements the lexigraph HTTP API.
//
// The server exposes the query surface of a loaded WordNet dataset over
// JSON endpoints:
//
//	GET /healthz                  - liveness and dataset stats
//	GET /v1/distance?a=&b=        - semantic distance between two nouns
//	GET /v1/sca?a=&b=             - shortest common ancestor of two nouns
//	GET /v1/outcast?nouns=a,b,c   - least related noun of a set
//	GET /v1/nouns/{word}          - vocabulary lookup with synset glosses
//	GET /v1/graph                 - hypernym digraph as JSON
//
// Query results are deterministic for a loaded dataset, so distance, sca,
// and outcast responses are cached behind a dataset-scoped key.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/lexigraph/lexigraph/pkg/cache"
	"github.com/lexigraph/lexigraph/pkg/wordnet"
)

// Config holds the server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Cache stores query results. Nil disables caching.
	Cache cache.Cache

	// DatasetHash fingerprints the loaded dataset and scopes cache keys.
	DatasetHash string

	// Logger receives request logs. Nil falls back to log.Default().
	Logger *log.Logger
}

// Server serves WordNet queries over HTTP.
type Server struct {
	wn      *wordnet.WordNet
	outcast *wordnet.Outcast
	cache   cache.Cache
	keyer   cache.Keyer
	logger  *log.Logger
	addr    string
	hash    string
}

// New creates a server for the given dataset.
func New(wn *wordnet.WordNet, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := cfg.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{
		wn:      wn,
		outcast: wordnet.NewOutcast(wn),
		cache:   c,
		keyer:   cache.NewScopedKeyer(nil, "ds:"+cfg.DatasetHash+":"),
		logger:  logger,
		addr:    cfg.Addr,
		hash:    cfg.DatasetHash,
	}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(recoverer(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/distance", s.handleDistance)
		r.Get("/sca", s.handleSCA)
		r.Get("/outcast", s.handleOutcast)
		r.Get("/nouns/{word}", s.handleNoun)
		r.Get("/graph", s.handleGraph)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
