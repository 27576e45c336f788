package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/delivery/http/helpers"
)

func TestRateLimit(t *testing.T) {
	rl := NewIPRateLimiter(1, 2, time.Minute)
	calls := 0
	handler := RateLimit(rl)(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "http://test/rsvp", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler(rr, req)
		return rr
	}

	require.Equal(t, http.StatusCreated, send("10.0.0.1:1111").Code)
	require.Equal(t, http.StatusCreated, send("10.0.0.1:2222").Code)

	rr := send("10.0.0.1:3333")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	var body helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, helpers.ErrCodeRateLimited, body.Error.Code)

	// A different client has its own bucket.
	assert.Equal(t, http.StatusCreated, send("10.0.0.2:1111").Code)
	assert.Equal(t, 3, calls)
}

func TestRateLimit_NilLimiter(t *testing.T) {
	handler := RateLimit(nil)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "http://test/", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestIPRateLimiter_RefillAndSweep(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rl := NewIPRateLimiter(60, 1, 5*time.Minute)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	require.True(t, rl.Allow("a"))
	require.False(t, rl.Allow("a"))

	now = now.Add(time.Second)
	require.True(t, rl.Allow("a"), "one token per second at 60/min")
	require.True(t, rl.Allow("b"))
	require.Equal(t, 2, rl.size())

	now = now.Add(10 * time.Minute)
	require.True(t, rl.Allow("c"))
	assert.Equal(t, 1, rl.size(), "idle visitors are swept on access")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://test/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(req))

	req.RemoteAddr = "unix"
	assert.Equal(t, "unix", clientIP(req))
}
