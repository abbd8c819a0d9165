package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dgallion1/docvox/internal/config"
	"github.com/dgallion1/docvox/internal/session"
	"github.com/dgallion1/docvox/internal/stats"
)

// Server is the HTTP API server for docvox.
type Server struct {
	router   chi.Router
	sessions *session.Manager
	latency  *stats.Latency
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Manager, latency *stats.Latency, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions: sessions,
		latency:  latency,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocvoxAPIKey, s.log))

		r.Post("/api/documents", s.handleOpen)
		r.Route("/api/documents/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleSession)
			r.Delete("/", s.handleClose)
			r.Post("/move", s.handleMove)
			r.Post("/seek", s.handleSeek)
			r.Get("/chunks", s.handleChunks)
			r.Get("/collection", s.handleCollection)
		})
		r.Get("/api/stats/nav", s.handleNavStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
