package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateRequest(remoteIP, forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.RemoteAddr = remoteIP + ":1234"
	if forwardedFor != "" {
		req.Header.Set(HeaderForwardedFor, forwardedFor)
	}
	return req
}

func serve(h http.Handler, req *http.Request) int {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestServer_RateLimitsPerClient(t *testing.T) {
	h := newTestEnv(t, "").server.Handler()

	for i := 0; i < RequestLimitPerWindow; i++ {
		require.Equal(t, http.StatusOK, serve(h, stateRequest("192.168.1.100", "")), "request %d", i)
	}

	assert.Equal(t, http.StatusTooManyRequests, serve(h, stateRequest("192.168.1.100", "")))
	assert.Equal(t, http.StatusOK, serve(h, stateRequest("192.168.1.101", "")), "other clients keep their own budget")
}

func TestServer_RateLimitKeysOnForwardedClientBehindTrustedProxy(t *testing.T) {
	env := newTestEnv(t, "")
	h := NewServer(Options{
		TrustedProxies: []string{"10.0.0.1"},
		Reveal:         env.adapter,
		SSEHub:         env.hub,
		Version:        "test",
	}).Handler()

	for i := 0; i < RequestLimitPerWindow; i++ {
		require.Equal(t, http.StatusOK, serve(h, stateRequest("10.0.0.1", "203.0.113.7")), "request %d", i)
	}

	assert.Equal(t, http.StatusTooManyRequests, serve(h, stateRequest("10.0.0.1", "203.0.113.7")))
	assert.Equal(t, http.StatusOK, serve(h, stateRequest("10.0.0.1", "203.0.113.8")))
}

func TestSecurityLoggingMiddleware_CountsRequests(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	h := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i <= RequestLimitPerWindow; i++ {
		serve(h, stateRequest("192.168.1.100", ""))
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, RequestLimitPerWindow+1, detector.requestCountByIP["192.168.1.100"])
}
