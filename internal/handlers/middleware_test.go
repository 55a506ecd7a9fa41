package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func limitedRequest(t *testing.T, h http.HandlerFunc, remoteAddr string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec.Code
}

func TestRateLimiterBlocksRepeatWithinWindow(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	h := rl.Middleware(okHandler)

	assert.Equal(t, http.StatusOK, limitedRequest(t, h, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, limitedRequest(t, h, "10.0.0.1:1234"))

	// Another address is unaffected.
	assert.Equal(t, http.StatusOK, limitedRequest(t, h, "10.0.0.2:1234"))
}

// Each public write endpoint carries its own limiter, so creating an order
// and immediately uploading its proof from the same address never trips
// the limit.
func TestRateLimitersAreIndependentPerEndpoint(t *testing.T) {
	createOrder := NewRateLimiter(time.Minute).Middleware(okHandler)
	submitProof := NewRateLimiter(time.Minute).Middleware(okHandler)

	assert.Equal(t, http.StatusOK, limitedRequest(t, createOrder, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, limitedRequest(t, submitProof, "10.0.0.1:1234"))
}
