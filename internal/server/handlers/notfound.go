package handlers

import (
	"net/http"

	"github.com/agentstation/thema/internal/server/response"
)

// HandleAPINotFound answers API paths that match no route.
func (h *Handlers) HandleAPINotFound(w http.ResponseWriter, _ *http.Request) {
	response.EndpointNotFound(w)
}

// HandleMethodNotAllowed answers known API paths requested with an
// unsupported method.
func (h *Handlers) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.MethodNotAllowed(w, r.Method)
}

// HandleFavicon answers favicon requests with 204 to keep logs quiet.
func (h *Handlers) HandleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
