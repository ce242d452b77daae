package httpmiddleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"studyhub/internal/errors"
)

// clientTTL is how long an idle client's bucket is kept before eviction.
const clientTTL = 3 * time.Minute

// RateLimit allows perMinute requests per client IP, with bursts up to perMinute.
// A non-positive limit disables it.
func RateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return RateLimitWithStore(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: clientTTL,
		},
	))
}

// RateLimitWithStore limits requests per client IP against store.
func RateLimitWithStore(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Message: "Unable to identify client",
				Code:    "FORBIDDEN",
			}).SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Message: "Too many requests",
				Code:    "RATE_LIMITED",
			})
		},
	})
}
