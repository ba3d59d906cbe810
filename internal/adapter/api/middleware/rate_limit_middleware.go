package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"avion/internal/infrastructure/ratelimit"
	"avion/pkg/logger"
)

// Auth endpoints get a small budget per IP; credential stuffing is the
// concern, not throughput.
var authLimiter = ratelimit.NewRateLimiter(5, 5, time.Minute)

func init() {
	go func() {
		for {
			time.Sleep(time.Hour)
			authLimiter.Cleanup(2 * time.Hour)
		}
	}()
}

func RateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(ip)
			if !allowed {
				logger.Warn("Rate limit exceeded for IP %s", ip)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait.Seconds()),
				})
			}

			return next(c)
		}
	}
}

func AuthRateLimit() echo.MiddlewareFunc {
	return RateLimit(authLimiter)
}
