package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stackhaven/zonemenu/internal/config"
	"github.com/stackhaven/zonemenu/internal/menu"
	"github.com/stackhaven/zonemenu/internal/render"
	"github.com/stackhaven/zonemenu/internal/store"
)

// UserResolver extracts the acting user from a request, or nil for an
// anonymous request. The resolved id only matters when per-user scoping is
// enabled.
type UserResolver func(r *http.Request) *int64

// Server serves the menu editing and rendering API.
type Server struct {
	cfg         config.Config
	store       *store.Store
	projector   *render.Projector
	logger      *slog.Logger
	resolveUser UserResolver
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithUserResolver replaces the default user resolution (the "user" form or
// query parameter) with deployment-specific logic, typically session
// lookup.
func WithUserResolver(resolve UserResolver) Option {
	return func(s *Server) {
		s.resolveUser = resolve
	}
}

// NewServer builds the API server.
func NewServer(cfg config.Config, st *store.Store, projector *render.Projector, opts ...Option) *Server {
	s := &Server{
		cfg:         cfg,
		store:       st,
		projector:   projector,
		logger:      slog.Default(),
		resolveUser: paramUserResolver,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/menu", func(r chi.Router) {
		r.Get("/zones", s.handleZones)
		r.Get("/render/{zone}", s.handleRender)
		r.Get("/editor", s.handleEditor)
		r.Post("/save", s.handleSave)
	})

	return r
}

// scope resolves the configuration scope for a request.
func (s *Server) scope(r *http.Request) menu.Scope {
	return s.cfg.Scope(s.resolveUser(r))
}

// paramUserResolver reads the "user" form or query parameter.
func paramUserResolver(r *http.Request) *int64 {
	raw := r.FormValue("user")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// writeJSON writes a JSON response. Encoding failures are logged; by then
// the status line is already on the wire.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
