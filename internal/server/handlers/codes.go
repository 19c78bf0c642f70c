package handlers

import (
	"net/http"

	"github.com/agentstation/thema/internal/server/response"
	"github.com/agentstation/thema/pkg/logging"
	"github.com/agentstation/thema/pkg/query"
)

// HandleListCodes handles GET /api/v1/codes.
// @Summary List codes
// @Description List all codes in source order, one page at a time
// @Tags codes
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param limit query integer false "Codes per page (default: 100)"
// @Success 200 {object} query.PagedResult
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/codes [get].
func (h *Handlers) HandleListCodes(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.ListCodes(intParam(r, "page"), intParam(r, "limit")))
}

// HandleSearchCodes handles GET /api/v1/codes/search.
// @Summary Search codes
// @Description Case-insensitive substring search over code values and descriptions,
// @Description optionally restricted to the direct children of a parent code
// @Tags codes
// @Produce json
// @Param query query string false "Text to find in value or description"
// @Param parent query string false "Parent code value (case-insensitive)"
// @Param page query integer false "Page number (default: 1)"
// @Param limit query integer false "Codes per page (default: 100)"
// @Success 200 {object} query.PagedResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/codes/search [get].
func (h *Handlers) HandleSearchCodes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.SearchParams{
		Query:  q.Get("query"),
		Parent: q.Get("parent"),
		Page:   intParam(r, "page"),
		Limit:  intParam(r, "limit"),
	}
	ctx := logging.WithSearch(r.Context(), params.Query, params.Parent)

	result, err := h.svc.SearchCodes(params)
	if err != nil {
		response.Error(w, r.WithContext(ctx), err)
		return
	}
	logging.FromContext(ctx).Debug().Int("matches", result.Pagination.Total).Msg("Search completed")

	if h.metrics != nil {
		h.metrics.ObserveSearch(result.Pagination.Total)
	}
	response.OK(w, result)
}

// HandleGetCode handles GET /api/v1/codes/{codeValue}.
// @Summary Get code
// @Description Get a single code by value (case-insensitive)
// @Tags codes
// @Produce json
// @Param codeValue path string true "Code value"
// @Success 200 {object} query.Entry
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/codes/{codeValue} [get].
func (h *Handlers) HandleGetCode(w http.ResponseWriter, r *http.Request) {
	value := pathParam(r, "codeValue")
	ctx := logging.WithCode(r.Context(), value)

	entry, err := h.svc.GetCode(value)
	if err != nil {
		response.Error(w, r.WithContext(ctx), err)
		return
	}
	response.OK(w, entry)
}

// HandleGetChildren handles GET /api/v1/codes/{codeValue}/children.
// @Summary Get children
// @Description List the direct children of a code (case-insensitive parent lookup)
// @Tags codes
// @Produce json
// @Param codeValue path string true "Parent code value"
// @Success 200 {object} query.ChildrenResult
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/codes/{codeValue}/children [get].
func (h *Handlers) HandleGetChildren(w http.ResponseWriter, r *http.Request) {
	value := pathParam(r, "codeValue")
	ctx := logging.WithCode(r.Context(), value)

	result, err := h.svc.GetChildren(value)
	if err != nil {
		response.Error(w, r.WithContext(ctx), err)
		return
	}
	response.OK(w, result)
}
