package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// rateLimitPrefix is the Redis key prefix for auth endpoint rate limits.
const rateLimitPrefix = "ratelimit:auth:"

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// CheckAuthRateLimit applies a fixed-window counter to an IP address.
// The IP is hashed so raw addresses are never stored. Fails open on
// Redis errors: a degraded cache must not lock users out.
func (c *Cache) CheckAuthRateLimit(ctx context.Context, ip string, max int, window time.Duration) (*RateLimitResult, error) {
	key := rateLimitPrefix + hashIP(ip)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return &RateLimitResult{Allowed: true, Remaining: int64(max)}, nil
	}

	// First hit in the window sets the expiry.
	if count == 1 {
		c.client.Expire(ctx, key, window)
	}

	if count > int64(max) {
		ttl, err := c.client.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return &RateLimitResult{Allowed: false, Remaining: 0, RetryAfter: ttl}, nil
	}

	return &RateLimitResult{Allowed: true, Remaining: int64(max) - count}, nil
}

// hashIP creates a truncated SHA256 hash of an IP address so raw
// client addresses never end up in Redis keys.
func hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(hash[:8])
}
