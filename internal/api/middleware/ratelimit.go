package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Limiter is the interface the rate-limit middleware gates requests through.
type Limiter interface {
	Allow(ctx context.Context, scope, key string) (bool, error)
}

// RateLimit limits requests per client IP under the given scope. A limiter
// failure (Redis down) fails open: the error is logged and the request
// proceeds.
func RateLimit(scope string, limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
