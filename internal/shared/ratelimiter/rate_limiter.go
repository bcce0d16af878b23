// Package ratelimiter throttles repeated calls per key, backed by Redis.
package ratelimiter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more call under the given key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter per key. With a nil client every
// call is allowed, so the server keeps working when Redis is down.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a limiter permitting limit calls per window under
// keys namespaced by prefix.
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
		prefix: prefix,
	}
}

// Allow counts the call and reports whether it is within the window's limit.
// Redis errors fail open: throttling is protection, not a dependency.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}

	slot := time.Now().Unix() / int64(l.window.Seconds())
	bucket := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	n, err := l.rdb.Incr(ctx, bucket).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		// First hit in this window owns the expiry.
		if err := l.rdb.Expire(ctx, bucket, l.window).Err(); err != nil {
			return true, err
		}
	}
	return n <= l.limit, nil
}

// Middleware returns a Gin middleware that applies the limiter per client IP
// and answers 429 when the limit is exceeded.
func Middleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err)
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
			return
		}
		c.Next()
	}
}
