package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/ratelimit"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRateLimitedHandler wraps a trivial OK handler with withRateLimit using a
// small quota so exhaustion is cheap to trigger.
func newRateLimitedHandler(profile ratelimit.Profile) http.Handler {
	h := newTestHandler(&service.Services{})
	limiter := ratelimit.NewLimiter(profile, ratelimit.NewMemoryStore(), logger.Nop())
	return h.withRateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestWithRateLimit_AnnotatesAdmittedRequests(t *testing.T) {
	handler := newRateLimitedHandler(ratelimit.Profile{MaxRequests: 5, Window: time.Minute})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))

	reset, err := strconv.ParseInt(rec.Header().Get("X-RateLimit-Reset"), 10, 64)
	require.NoError(t, err)
	assert.Greater(t, reset, time.Now().Unix())
}

func TestWithRateLimit_RejectsOverQuota(t *testing.T) {
	handler := newRateLimitedHandler(ratelimit.Profile{MaxRequests: 2, Window: time.Minute})

	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		req.Header.Set("User-Agent", "test-agent")
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var response models.RateLimitExceededResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "Too many requests, please try again later", response.Error)
	assert.Equal(t, 2, response.Limit)
	assert.Equal(t, time.Minute.Milliseconds(), response.WindowMs)
	assert.Positive(t, response.RetryAfter)

	_, err := time.Parse(time.RFC3339, response.Timestamp)
	assert.NoError(t, err)
}

func TestWithRateLimit_DistinctClientsHaveSeparateQuotas(t *testing.T) {
	handler := newRateLimitedHandler(ratelimit.Profile{MaxRequests: 1, Window: time.Minute})

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	first.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same IP, different User-Agent: a fresh quota.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "10.0.0.1:6000"
	second.Header.Set("User-Agent", "another-agent")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Same client as the first request: quota exhausted.
	third := httptest.NewRequest(http.MethodGet, "/", nil)
	third.RemoteAddr = "10.0.0.1:7000"
	third.Header.Set("User-Agent", "test-agent")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, third)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:54321"
	assert.Equal(t, "192.168.1.10", clientIP(req))

	req.RemoteAddr = "192.168.1.10"
	assert.Equal(t, "192.168.1.10", clientIP(req))
}
