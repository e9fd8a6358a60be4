package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/cache"
)

type fakeLimiter struct {
	result *cache.RateLimitResult
}

func (f *fakeLimiter) CheckAuthRateLimit(ctx context.Context, ip string, max int, window time.Duration) (*cache.RateLimitResult, error) {
	return f.result, nil
}

func TestRateLimitAuth_Allowed(t *testing.T) {
	mw := RateLimitAuth(RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: &fakeLimiter{result: &cache.RateLimitResult{Allowed: true, Remaining: 9}},
		Enabled: true,
		Max:     10,
		Window:  time.Minute,
	})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestRateLimitAuth_Blocked(t *testing.T) {
	mw := RateLimitAuth(RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: &fakeLimiter{result: &cache.RateLimitResult{Allowed: false, RetryAfter: 30 * time.Second}},
		Enabled: true,
		Max:     10,
		Window:  time.Minute,
	})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when rate limited")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "30" {
		t.Errorf("expected Retry-After 30, got %q", rec.Header().Get("Retry-After"))
	}
}

func TestRateLimitAuth_Disabled(t *testing.T) {
	mw := RateLimitAuth(RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: &fakeLimiter{result: &cache.RateLimitResult{Allowed: false}},
		Enabled: false,
	})

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected limiter to be bypassed when disabled, got %d", rec.Code)
	}
}
