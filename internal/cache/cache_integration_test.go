package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/testutil"
)

func setupCache(t *testing.T) (*Cache, context.Context) {
	t.Helper()

	redisURL := testutil.RequireEnv(t, "TEST_REDIS_URL")
	ctx := context.Background()

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	return c, ctx
}

func TestCheckAuthRateLimit_FixedWindow(t *testing.T) {
	c, ctx := setupCache(t)

	ip := fmt.Sprintf("198.51.100.%d", time.Now().UnixNano()%250)
	const max = 3

	for i := 0; i < max; i++ {
		result, err := c.CheckAuthRateLimit(ctx, ip, max, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if result.Remaining != int64(max-i-1) {
			t.Errorf("request %d: expected remaining %d, got %d", i+1, max-i-1, result.Remaining)
		}
	}

	result, err := c.CheckAuthRateLimit(ctx, ip, max, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Allowed {
		t.Error("request over the limit should be blocked")
	}
	if result.RetryAfter <= 0 || result.RetryAfter > time.Minute {
		t.Errorf("unexpected retry-after: %v", result.RetryAfter)
	}
}

func TestCheckAuthRateLimit_SeparateClients(t *testing.T) {
	c, ctx := setupCache(t)

	base := time.Now().UnixNano()
	first := fmt.Sprintf("203.0.113.%d", base%120)
	second := fmt.Sprintf("203.0.113.%d", base%120+121)

	for i := 0; i < 2; i++ {
		if _, err := c.CheckAuthRateLimit(ctx, first, 2, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if result, _ := c.CheckAuthRateLimit(ctx, first, 2, time.Minute); result.Allowed {
		t.Error("first client should be blocked")
	}

	result, err := c.CheckAuthRateLimit(ctx, second, 2, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Allowed {
		t.Error("second client should not share the first client's window")
	}
}
