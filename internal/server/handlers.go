package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lexigraph/lexigraph/pkg/cache"
	"github.com/lexigraph/lexigraph/pkg/digraph"
	"github.com/lexigraph/lexigraph/pkg/errors"
	"github.com/lexigraph/lexigraph/pkg/graphio"
	"github.com/lexigraph/lexigraph/pkg/observability"
	"github.com/lexigraph/lexigraph/pkg/wordnet"
)

// =============================================================================
// Response Types
// =============================================================================

type healthResponse struct {
	Status      string `json:"status"`
	DatasetHash string `json:"dataset_hash,omitempty"`
	Nouns       int    `json:"nouns"`
	Synsets     int    `json:"synsets"`
	Edges       int    `json:"edges"`
}

type distanceResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Distance int    `json:"distance"`
}

type scaResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Ancestor uint32 `json:"ancestor"`
	Length   int    `json:"length"`
	Gloss    string `json:"gloss"`
}

type outcastResponse struct {
	Nouns   []string `json:"nouns"`
	Outcast string   `json:"outcast"`
}

type nounResponse struct {
	Word    string       `json:"word"`
	Known   bool         `json:"known"`
	Synsets []nounSynset `json:"synsets,omitempty"`
}

type nounSynset struct {
	ID    uint32 `json:"id"`
	Gloss string `json:"gloss"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		DatasetHash: s.hash,
		Nouns:       s.wn.NounCount(),
		Synsets:     s.wn.SynsetCount(),
		Edges:       s.wn.Graph().EdgeCount(),
	})
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if err := errors.ValidateWords([]string{a, b}); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := cachedQuery(r.Context(), s, "distance", []string{a, b}, func() (distanceResponse, error) {
		d, err := s.wn.Distance(a, b)
		if err != nil {
			return distanceResponse{}, err
		}
		return distanceResponse{A: a, B: b, Distance: d}, nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSCA(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if err := errors.ValidateWords([]string{a, b}); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := cachedQuery(r.Context(), s, "sca", []string{a, b}, func() (scaResponse, error) {
		res, err := s.wn.AncestorLength(a, b)
		if err != nil {
			return scaResponse{}, err
		}
		gloss, err := s.wn.Gloss(res.Ancestor)
		if err != nil {
			return scaResponse{}, err
		}
		return scaResponse{A: a, B: b, Ancestor: res.Ancestor, Length: res.Length, Gloss: gloss}, nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOutcast(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("nouns")
	nouns := strings.Split(raw, ",")
	if raw == "" {
		nouns = nil
	}
	if err := errors.ValidateWords(nouns); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := cachedQuery(r.Context(), s, "outcast", nouns, func() (outcastResponse, error) {
		out, err := s.outcast.Find(nouns)
		if err != nil {
			return outcastResponse{}, err
		}
		return outcastResponse{Nouns: nouns, Outcast: out}, nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNoun(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if err := errors.ValidateWord(word); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := nounResponse{Word: word, Known: s.wn.IsNoun(word)}
	if resp.Known {
		ids, err := s.wn.IDs(word)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		for _, id := range ids {
			gloss, err := s.wn.Gloss(id)
			if err != nil {
				s.writeError(w, r, err)
				return
			}
			resp.Synsets = append(resp.Synsets, nounSynset{ID: id, Gloss: gloss})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := s.keyer.GraphKey(s.hash)

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "graph")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "graph")

	data, err := graphio.MarshalGraph(s.wn.Graph())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cache.Set(ctx, key, data, cache.DefaultTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Cache Plumbing
// =============================================================================

// cachedQuery runs a query through the result cache: serve a hit, otherwise
// compute, store, and report through the observability hooks. Cache failures
// degrade to computing the answer directly.
func cachedQuery[T any](ctx context.Context, s *Server, kind string, terms []string, compute func() (T, error)) (T, error) {
	key := s.keyer.QueryKey(kind, terms...)

	var out T
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		if err := json.Unmarshal(data, &out); err == nil {
			observability.Cache().OnCacheHit(ctx, "query")
			return out, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "query")

	observability.Query().OnQueryStart(ctx, kind)
	start := time.Now()
	out, err := compute()
	observability.Query().OnQueryComplete(ctx, kind, time.Since(start), err)
	if err != nil {
		return out, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, data, cache.DefaultTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "query", len(data))
		}
	}
	return out, nil
}

// =============================================================================
// Response Helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes and a structured JSON
// body carrying a machine-readable code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.ErrCodeInternal

	switch {
	case stderrors.Is(err, wordnet.ErrUnknownWord):
		status, code = http.StatusNotFound, errors.ErrCodeUnknownWord
	case stderrors.Is(err, wordnet.ErrUnknownSynset):
		status, code = http.StatusNotFound, errors.ErrCodeUnknownSynset
	case stderrors.Is(err, digraph.ErrUnknownID):
		status, code = http.StatusNotFound, errors.ErrCodeUnknownSynset
	case stderrors.Is(err, digraph.ErrNoCommonAncestor):
		status, code = http.StatusNotFound, errors.ErrCodeNoCommonAncestor
	case stderrors.Is(err, digraph.ErrEmptySubset):
		status, code = http.StatusBadRequest, errors.ErrCodeInvalidInput
	case errors.GetCode(err) != "":
		status, code = http.StatusBadRequest, errors.GetCode(err)
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}

	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(code),
		RequestID: requestIDFromContext(r.Context()),
	})
}
