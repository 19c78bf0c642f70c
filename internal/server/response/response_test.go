package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/logging"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Error
}

// TestOK tests that successful bodies are written without an envelope.
func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]string{"codeValue": "YFB"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type %q", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["codeValue"] != "YFB" {
		t.Errorf("expected raw body, got %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Error("success body must not be wrapped")
	}
}

// TestError tests the mapping of every error kind to a response.
func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "invalid search",
			err:     errors.NewInvalidSearchError(),
			status:  http.StatusBadRequest,
			code:    CodeInvalidSearch,
			message: "At least one search parameter (query or parent) is required",
		},
		{
			name:    "code not found",
			err:     errors.NewNotFoundError(errors.ResourceCode, "ZZZ"),
			status:  http.StatusNotFound,
			code:    CodeCodeNotFound,
			message: "Code with value 'ZZZ' not found",
		},
		{
			name:    "wrapped code not found",
			err:     fmt.Errorf("lookup: %w", errors.NewNotFoundError(errors.ResourceCode, "yfb9")),
			status:  http.StatusNotFound,
			code:    CodeCodeNotFound,
			message: "Code with value 'yfb9' not found",
		},
		{
			name:    "parent not found",
			err:     errors.NewNotFoundError(errors.ResourceParentCode, "nope"),
			status:  http.StatusNotFound,
			code:    CodeParentNotFound,
			message: "Parent code with value 'nope' not found",
		},
		{
			name:    "endpoint not found",
			err:     errors.NewNotFoundError(errors.ResourceEndpoint, "/api/v1/nope"),
			status:  http.StatusNotFound,
			code:    CodeEndpointNotFound,
			message: "API endpoint not found",
		},
		{
			name:    "unclassified",
			err:     errors.New("disk on fire"),
			status:  http.StatusInternalServerError,
			code:    CodeInternalError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)
			r := httptest.NewRequest(http.MethodGet, "/api/v1/codes", nil)
			r = r.WithContext(logging.WithLogger(r.Context(), tl.Logger))
			w := httptest.NewRecorder()

			Error(w, r, tt.err)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			body := decodeError(t, w)
			if body.Status != tt.status {
				t.Errorf("expected body status %d, got %d", tt.status, body.Status)
			}
			if body.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, body.Code)
			}
			if body.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, body.Message)
			}

			if tt.status == http.StatusInternalServerError {
				tl.AssertContains(t, "disk on fire")
			} else {
				tl.AssertCount(t, 0)
			}
		})
	}
}

// TestInternalErrorHidesDetail tests that 500 bodies carry no error text.
func TestInternalErrorHidesDetail(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(logging.WithLogger(r.Context(), logging.NewNopLogger()))
	w := httptest.NewRecorder()

	Error(w, r, errors.New("secret detail"))

	if got := w.Body.String(); strings.Contains(got, "secret") {
		t.Errorf("internal error leaked detail: %s", got)
	}
}

// TestMethodNotAllowed tests the 405 helper.
func TestMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	MethodNotAllowed(w, http.MethodPost)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != http.MethodGet {
		t.Errorf("expected Allow header GET, got %q", allow)
	}
	if body := decodeError(t, w); body.Code != CodeMethodNotAllowed {
		t.Errorf("expected code %s, got %s", CodeMethodNotAllowed, body.Code)
	}
}

// TestSimpleFailures tests the fixed-message helpers.
func TestSimpleFailures(t *testing.T) {
	tests := []struct {
		name   string
		write  func(http.ResponseWriter)
		status int
		code   string
	}{
		{"endpoint not found", EndpointNotFound, http.StatusNotFound, CodeEndpointNotFound},
		{"rate limited", RateLimited, http.StatusTooManyRequests, CodeRateLimited},
		{"internal", InternalError, http.StatusInternalServerError, CodeInternalError},
		{"unavailable", func(w http.ResponseWriter) { ServiceUnavailable(w, "not ready") }, http.StatusServiceUnavailable, CodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			body := decodeError(t, w)
			if body.Code != tt.code || body.Status != tt.status {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}
