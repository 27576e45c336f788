package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/delivery/http/helpers"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{"store reachable", nil, http.StatusOK},
		{"store down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHealthController(testLogger, pingerFunc(func(context.Context) error { return tt.pingErr }))
			rr := httptest.NewRecorder()

			c.Health(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.pingErr == nil {
				env := decode[HealthResponse](t, rr)
				assert.Nil(t, env.Error)
				assert.Equal(t, "ok", env.Data.Status)
				return
			}
			env := decode[HealthResponse](t, rr)
			require.NotNil(t, env.Error)
			assert.Equal(t, helpers.ErrCodeInternalError, env.Error.Code)
			assert.NotContains(t, rr.Body.String(), "refused")
		})
	}
}
