package handlers

import (
	"net/http"

	"github.com/agentstation/thema/internal/server/response"
)

// HandleMetadata handles GET /api/v1/metadata.
// @Summary Code list metadata
// @Description Identifying fields, issue dates and size of the code list
// @Tags codes
// @Produce json
// @Success 200 {object} query.MetadataResult
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/metadata [get].
func (h *Handlers) HandleMetadata(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, h.svc.Metadata())
}
