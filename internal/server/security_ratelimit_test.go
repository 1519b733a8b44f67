package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(RateLimitMaxRequests, RateLimitWindow)
	handler := RateLimitMiddleware(nil, limiter)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < RateLimitMaxRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "300", rec.Header().Get(HeaderRetryAfter))

	// Other clients are unaffected
	other := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_ExemptPaths(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	handler := RateLimitMiddleware(nil, limiter)(okHandler())

	for _, path := range []string{"/healthz", "/metrics", "/swagger/index.html", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "192.168.1.100:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.clients)
}

func TestRateLimiter_WindowPerClient(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	now := start
	limiter.now = func() time.Time { return now }
	limiter.lastPrune = start

	assert.True(t, limiter.Allow("a"))
	now = start.Add(30 * time.Second)
	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "b opens its own window")
	assert.False(t, limiter.Allow("a"))

	now = start.Add(time.Minute)
	assert.True(t, limiter.Allow("a"), "a's window has rolled over")
	assert.True(t, limiter.Allow("b"), "b is still inside its window")
	assert.False(t, limiter.Allow("b"))
}

func TestRateLimiter_PrunesIdleClients(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	now := start
	limiter.now = func() time.Time { return now }
	limiter.lastPrune = start

	limiter.Allow("idle")
	now = start.Add(2 * time.Minute)
	limiter.Allow("active")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.clients, "idle")
	assert.Contains(t, limiter.clients, "active")
}
