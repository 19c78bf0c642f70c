// Package handlers provides HTTP request handlers for the thema API.
package handlers

import (
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/agentstation/thema/internal/server/metrics"
	"github.com/agentstation/thema/pkg/query"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	svc       *query.Service
	metrics   *metrics.Metrics // nil when metrics are disabled
	ui        fs.FS            // nil when the UI is disabled
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(svc *query.Service, m *metrics.Metrics, ui fs.FS, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		svc:       svc,
		metrics:   m,
		ui:        ui,
		logger:    logger,
		startTime: time.Now(),
	}
}

// pathParam returns the decoded value of a chi URL parameter.
// chi matches against the raw path when the request carries escapes, so the
// parameter is unescaped in that case only.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// intParam parses a query parameter as an integer. Missing or non-numeric
// values yield 0, which the query layer treats as unset.
func intParam(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}
