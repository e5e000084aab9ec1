package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"vendio/internal/infrastructure/ratelimit"
	"vendio/pkg/errors"
	"vendio/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an action per caller. The subject is the
// authenticated user when present, otherwise the client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject := c.RealIP()
			if uid, ok := c.Get("uid").(string); ok && uid != "" {
				subject = uid
			}

			if allowed, wait := m.limiter.Allow(subject, action); !allowed {
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Rate limit exceeded, retry in %s", wait.Round(time.Second))))
			}

			return next(c)
		}
	}
}
