package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/thema/internal/server/response"
	"github.com/agentstation/thema/pkg/constants"
)

// HandleHealth handles GET /health and GET /api/v1/health.
// @Summary Health check
// @Description Health check endpoint (liveness probe)
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": constants.ServiceName,
		"version": constants.APIVersion,
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Readiness check including the size of the loaded code list
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Failure 503 {object} response.ErrorResponse
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	if h.svc == nil || h.svc.Repository() == nil {
		response.ServiceUnavailable(w, "Code list not loaded")
		return
	}

	response.OK(w, map[string]any{
		"status": "ready",
		"codes":  h.svc.Repository().Len(),
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
