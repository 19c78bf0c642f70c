package middleware

import (
	"net/http"
	"time"

	"github.com/agentstation/thema/internal/server/metrics"
)

// Metrics records request counts, latencies and in-flight requests,
// labelled by route pattern.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()

			wrapped := newResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			m.ObserveRequest(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
		})
	}
}
