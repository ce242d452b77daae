package httpmiddleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"studyhub/internal/auth"
	"studyhub/internal/errors"
)

// RevocationChecker reports whether an access token was revoked at logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, claims *auth.Claims) bool
}

// RequireAccessToken runs after the JWT middleware. It refuses refresh tokens
// presented as bearer credentials and access tokens blacklisted at logout.
func RequireAccessToken(checker RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthorized("Authentication required", "UNAUTHORIZED")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || !claims.IsAccess() {
				return unauthorized("Access token required", "INVALID_TOKEN")
			}
			if checker.IsRevoked(c.Request().Context(), claims) {
				return unauthorized("Token has been revoked", "TOKEN_REVOKED")
			}
			return next(c)
		}
	}
}

func unauthorized(message, code string) error {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Message: message,
		Code:    code,
	})
}
