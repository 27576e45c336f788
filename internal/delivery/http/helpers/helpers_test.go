package helpers

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]string{"status": "ok"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"status":"ok"},"error":null}`, rr.Body.String())

	rr = httptest.NewRecorder()
	WriteAPIError(rr, http.StatusBadRequest, &APIError{Code: ErrCodeValidationFailed, Message: "bad", Errors: []string{"name is required"}})
	assert.JSONEq(t, `{"data":null,"error":{"code":"validation_failed","message":"bad","errors":["name is required"]}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "RSVP not found")
	assert.JSONEq(t, `{"data":null,"error":{"code":"not_found","message":"RSVP not found"}}`, rr.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantMsg string
	}{
		{"valid", `{"name":"Ana","unknown":1}`, true, ""},
		{"empty", "", false, "request body is required"},
		{"malformed", `{"name":`, false, "invalid JSON body"},
		{"wrong shape", `["Ana"]`, false, "invalid JSON body"},
		{"too large", `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, false, "request body too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rsvp", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var p payload

			ok := DecodeJSON(rr, req, &p)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Ana", p.Name)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), ErrCodeBadRequest)
			assert.Contains(t, rr.Body.String(), tt.wantMsg)
		})
	}
}

func TestBaseURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://rsvp.local:8080/rsvp", nil)
	assert.Equal(t, "http://rsvp.local:8080", BaseURL(req))

	req.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://rsvp.local:8080", BaseURL(req))

	req.TLS = nil
	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://rsvp.local:8080", BaseURL(req))

	req.Header.Set("X-Forwarded-Proto", "gopher")
	assert.Equal(t, "http://rsvp.local:8080", BaseURL(req))
}
