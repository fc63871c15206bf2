package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func rateLimitedEngine(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rps, burst).Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimiter_AllowsWithinBurstThen429(t *testing.T) {
	r := rateLimitedEngine(0, 2) // no refill, burst of 2

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatal("Retry-After header missing")
	}
	if !strings.Contains(w.Body.String(), "rate_limited") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestRateLimiter_BucketsAreKeyedByClientIP(t *testing.T) {
	r := rateLimitedEngine(0, 1)

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.RemoteAddr = "198.51.100.1:1111"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first client: %d", w.Code)
	}

	// A different client gets its own bucket.
	second := httptest.NewRequest(http.MethodGet, "/ping", nil)
	second.RemoteAddr = "198.51.100.2:2222"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	if w.Code != http.StatusOK {
		t.Fatalf("second client: %d", w.Code)
	}

	// The first client's bucket is exhausted.
	again := httptest.NewRequest(http.MethodGet, "/ping", nil)
	again.RemoteAddr = "198.51.100.1:3333"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, again)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client again: %d", w.Code)
	}
}

func TestNewRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0)
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want 1", rl.burst)
	}
}
