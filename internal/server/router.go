package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/agentstation/thema/internal/server/handlers"
	"github.com/agentstation/thema/internal/server/middleware"
	"github.com/agentstation/thema/pkg/constants"
)

// apiRoot is the path under which every unmatched request gets a JSON 404,
// whatever the configured prefix.
const apiRoot = "/api"

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	if err := s.applyMiddleware(r); err != nil {
		return nil, err
	}

	h := handlers.New(s.svc, s.metrics, s.ui, s.logger)
	s.registerRoutes(r, h)

	return r, nil
}

// applyMiddleware installs the middleware chain, outermost first.
func (s *Server) applyMiddleware(r chi.Router) error {
	cfg := s.config

	// Request IDs and logging wrap everything so every line is correlated
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.logger))
	if s.metrics != nil {
		r.Use(middleware.Metrics(s.metrics))
	}
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityConfig()))

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		}
		r.Use(middleware.CORS(corsConfig))
	}

	// Rate limiting (if enabled)
	if s.limiter != nil {
		r.Use(middleware.RateLimit(s.limiter))
	}

	if cfg.GzipEnabled {
		gzip, err := middleware.Compression(constants.GzipMinSize)
		if err != nil {
			return err
		}
		r.Use(gzip)
	}

	// "/api/v1/codes/" routes like "/api/v1/codes"
	r.Use(chimw.StripSlashes)
	return nil
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(r chi.Router, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	r.Get("/favicon.ico", h.HandleFavicon)

	// Operational endpoints
	r.Get("/health", h.HandleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route(prefix, func(api chi.Router) {
		api.NotFound(h.HandleAPINotFound)
		api.MethodNotAllowed(h.HandleMethodNotAllowed)

		api.Get("/health", h.HandleHealth)
		api.Get("/ready", h.HandleReady)
		api.Get("/openapi.json", h.HandleOpenAPIJSON)
		api.Get("/openapi.yaml", h.HandleOpenAPIYAML)

		api.Get("/metadata", h.HandleMetadata)
		api.Get("/codes", h.HandleListCodes)
		api.Get("/codes/search", h.HandleSearchCodes)
		api.Get("/codes/{codeValue}", h.HandleGetCode)
		api.Get("/codes/{codeValue}/children", h.HandleGetChildren)
	})

	// Other versions or prefixes under /api never fall through to the UI
	if prefix != apiRoot {
		r.HandleFunc(apiRoot, h.HandleAPINotFound)
		r.HandleFunc(apiRoot+"/*", h.HandleAPINotFound)
	}

	// Browser UI with client-side route fallback
	r.Get("/*", h.HandleUI)
	r.Head("/*", h.HandleUI)
	r.MethodNotAllowed(h.HandleMethodNotAllowed)
}
