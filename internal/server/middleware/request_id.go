package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/agentstation/thema/pkg/logging"
)

// RequestIDHeader is the header that carries the request ID.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client-supplied request IDs.
const maxRequestIDLength = 128

// RequestIDConfig holds configuration for the request ID middleware.
type RequestIDConfig struct {
	// HeaderName is the name of the header to read/write the request ID
	HeaderName string
	// Generator creates IDs for requests that do not carry a usable one
	Generator func() string
}

// DefaultRequestIDConfig returns the default request ID configuration.
func DefaultRequestIDConfig() RequestIDConfig {
	return RequestIDConfig{
		HeaderName: RequestIDHeader,
		Generator:  func() string { return uuid.New().String() },
	}
}

// RequestID tags each request with an ID, reusing the client's when it is
// well formed. The ID is echoed in the response header and stored in the
// request context (see logging.RequestID).
func RequestID() func(http.Handler) http.Handler {
	return RequestIDWithConfig(DefaultRequestIDConfig())
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
func RequestIDWithConfig(config RequestIDConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(config.HeaderName)
			if !validRequestID(requestID) {
				requestID = config.Generator()
			}

			w.Header().Set(config.HeaderName, requestID)
			next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), requestID)))
		})
	}
}

// validRequestID accepts short IDs made of visible ASCII.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
