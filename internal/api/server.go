package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docscan/internal/config"
	"docscan/internal/scan"
)

// Server is the HTTP API server for docscan.
type Server struct {
	router chi.Router
	store  *scan.Store
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *scan.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: store,
		log:   log,
		cfg:   cfg,
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
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Scan endpoints, authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/scan", s.handleScan)
		r.Get("/api/scan/{sessionID}", s.handleSession)
		r.Get("/api/scan/{sessionID}/by-document", s.handleByDocument)
		r.Get("/api/scan/{sessionID}/by-keyword", s.handleByKeyword)
		r.Get("/api/scan/{sessionID}/table", s.handleTable)
		r.Get("/api/scan/{sessionID}/export.csv", s.handleExport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
