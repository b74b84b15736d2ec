package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"changaya_backend/internal/logger"
	"changaya_backend/internal/pkg/cache"
	"changaya_backend/pkg/apperrors"
)

// RateLimitMiddleware limits requests per client IP over a fixed window,
// backed by redis. Used on the credential endpoints (register, login) to
// slow down enumeration and brute force.
func RateLimitMiddleware(client cache.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := client.GetInt(ctx, key)
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			// A broken cache must not take authentication down with it.
			logger.CtxWarn(ctx, "rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if errors.Is(err, cache.ErrCacheMiss) {
			if err := client.Set(ctx, key, 1, window); err != nil {
				logger.CtxWarn(ctx, "rate limiter unavailable, allowing request", "error", err)
			}
			c.Next()
			return
		}

		if count >= limit {
			apperrors.HandleError(c, apperrors.New(
				apperrors.CodeLimitExceeded,
				"ratelimit",
				"Too many requests. Try again later.",
				http.StatusTooManyRequests,
			))
			c.Abort()
			return
		}

		if err := client.Incr(ctx, key); err != nil {
			logger.CtxWarn(ctx, "rate limiter increment failed", "error", err)
		}

		c.Next()
	}
}
