package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("within budget", func(t *testing.T) {
		l := NewRateLimiter(3, time.Minute, nil)
		for i := 0; i < 3; i++ {
			if !l.Allow("10.0.0.1") {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("request over budget should be denied")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewRateLimiter(1, time.Minute, nil)
		if !l.Allow("10.0.0.1") {
			t.Fatalf("first client should be allowed")
		}
		if !l.Allow("10.0.0.2") {
			t.Fatalf("second client should be allowed")
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("first client should be over budget")
		}
	})

	t.Run("zero limit denies every request", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		l := NewRateLimiter(0, time.Minute, func() time.Time { return now })

		if l.Allow("10.0.0.1") {
			t.Fatalf("first request of a fresh window should be denied")
		}
		now = now.Add(time.Minute)
		if l.Allow("10.0.0.1") {
			t.Fatalf("first request after rollover should be denied")
		}
	})

	t.Run("window rollover resets the budget", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		l := NewRateLimiter(1, time.Minute, func() time.Time { return now })

		if !l.Allow("10.0.0.1") {
			t.Fatalf("first request should be allowed")
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("second request in window should be denied")
		}

		now = now.Add(time.Minute)
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request in new window should be allowed")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewRateLimiter(2, time.Minute, nil)
	r := gin.New()
	r.GET("/v1/proposals", RateLimit(l), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/proposals", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/proposals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}
