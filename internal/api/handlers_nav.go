package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/navigator"
	"github.com/dgallion1/docvox/internal/traverse"
)

type moveRequest struct {
	Granularity    string `json:"granularity"`
	Direction      string `json:"direction"`
	SkipWhitespace bool   `json:"skip_whitespace"`
}

type seekRequest struct {
	XPath string `json:"xpath"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	g, err := traverse.ParseGranularity(req.Granularity)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	dir, err := traverse.ParseDirection(req.Direction)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := sess.Navigator().Move(g, dir, req.SkipWhitespace)
	s.observe("move", start)
	if err != nil {
		navError(w, err)
		return
	}

	result := "text"
	if res.End {
		result = "end"
	}
	navMovesTotal.WithLabelValues(g.String(), dir.String(), result).Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleSeek(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.XPath == "" {
		jsonError(w, "xpath is required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := sess.Navigator().Seek(req.XPath)
	s.observe("seek", start)
	if err != nil {
		navError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleChunks(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	q := r.URL.Query()
	gname := q.Get("granularity")
	if gname == "" {
		gname = "sentence"
	}
	g, err := traverse.ParseGranularity(gname)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	dir, err := traverse.ParseDirection(q.Get("direction"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	chunks, err := sess.Navigator().Chunks(g, dir)
	s.observe("chunks", start)
	if err != nil {
		navError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"granularity": g.String(),
		"chunks":      chunks,
	})
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}

	start := time.Now()
	descs, err := sess.Navigator().Collection(r.URL.Query().Get("xpath"))
	s.observe("collection", start)
	if err != nil {
		navError(w, err)
		return
	}
	collectionSize.Observe(float64(len(descs)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"descriptions": descs})
}

// navError maps navigator errors to HTTP statuses.
func navError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, navigator.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, doctree.ErrInvalidArgument):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}
