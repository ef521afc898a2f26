package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"trueestate/internal/infrastructure/ratelimit"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
	"trueestate/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit meters the named action per authenticated user; unauthenticated
// callers are keyed by IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, retryAfter := m.limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit: %s on %s", key, action)
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, try again later"))
			}

			return next(c)
		}
	}
}
