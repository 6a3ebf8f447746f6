package middleware

import (
	"net/http"

	"edugen/internal/config"
	"edugen/internal/domain"
	"edugen/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// RateLimiter protects the generation endpoints with a fixed-window per-IP
// quota. Its in-memory counters are the only shared mutable state in the
// process; the limiter increments them atomically per request.
func RateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:                    cfg.Max,
		Expiration:             cfg.Window,
		LimiterMiddleware:      limiter.FixedWindow{},
		SkipSuccessfulRequests: false,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Get().Warn("Rate limit exceeded",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
			)
			return c.Status(http.StatusTooManyRequests).JSON(ErrorResponse{
				Code:    string(domain.CodeRateLimited),
				Message: "Too many requests, try again later",
				Status:  http.StatusTooManyRequests,
			})
		},
	})
}
