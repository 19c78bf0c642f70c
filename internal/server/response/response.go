// Package response writes JSON responses for the thema API server.
//
// Successful responses carry the result object as the whole body. Failures
// use a single envelope, {"error": {"status", "message", "code"}}, and Error
// is the only place where an error is mapped to a status code.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/logging"
)

// Error codes carried in the error envelope.
const (
	CodeInvalidSearch       = "INVALID_SEARCH"
	CodeCodeNotFound        = "CODE_NOT_FOUND"
	CodeParentNotFound      = "PARENT_CODE_NOT_FOUND"
	CodeEndpointNotFound    = "ENDPOINT_NOT_FOUND"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeRateLimited         = "RATE_LIMITED"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeInternalError       = "INTERNAL_ERROR"
	messageInternal         = "Internal server error"
	messageInvalidSearch    = "At least one search parameter (query or parent) is required"
	messageEndpointNotFound = "API endpoint not found"
)

// ErrorBody is the content of the error envelope.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Headers are already sent; nothing useful can be done on failure.
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with a 200 status.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Fail writes the error envelope.
func Fail(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{Error: ErrorBody{
		Status:  status,
		Message: message,
		Code:    code,
	}})
}

// Error classifies err and writes the matching error response.
// Unclassified errors are logged with the request logger and reported as a
// generic 500 without detail.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch errors.KindOf(err) {
	case errors.KindInvalidSearch:
		Fail(w, http.StatusBadRequest, CodeInvalidSearch, messageInvalidSearch)
	case errors.KindCodeNotFound:
		Fail(w, http.StatusNotFound, CodeCodeNotFound, fmt.Sprintf("Code with value '%s' not found", notFoundID(err)))
	case errors.KindParentNotFound:
		Fail(w, http.StatusNotFound, CodeParentNotFound, fmt.Sprintf("Parent code with value '%s' not found", notFoundID(err)))
	case errors.KindEndpointNotFound:
		Fail(w, http.StatusNotFound, CodeEndpointNotFound, messageEndpointNotFound)
	default:
		logging.FromContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		InternalError(w)
	}
}

func notFoundID(err error) string {
	var nf *errors.NotFoundError
	if errors.As(err, &nf) {
		return nf.ID
	}
	return ""
}

// InternalError writes a generic 500 response.
func InternalError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, CodeInternalError, messageInternal)
}

// EndpointNotFound writes the 404 returned for unknown API paths.
func EndpointNotFound(w http.ResponseWriter) {
	Fail(w, http.StatusNotFound, CodeEndpointNotFound, messageEndpointNotFound)
}

// MethodNotAllowed writes a 405 response.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	w.Header().Set("Allow", http.MethodGet)
	Fail(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method "+method+" is not allowed")
}

// RateLimited writes a 429 response.
func RateLimited(w http.ResponseWriter) {
	Fail(w, http.StatusTooManyRequests, CodeRateLimited, "Too many requests, please try again later")
}

// ServiceUnavailable writes a 503 response.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	Fail(w, http.StatusServiceUnavailable, CodeServiceUnavailable, message)
}
