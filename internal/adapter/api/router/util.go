package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"trueestate/internal/infrastructure/token"
)

// OptionalAuth decodes a bearer token when one is present but never rejects
// the request. Used on public reads that personalize when a session exists.
func OptionalAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return next(c)
			}

			c.Set("uid", claims.Subject)
			c.Set("role", claims.Role)
			c.Set("verified", claims.Verified)

			return next(c)
		}
	}
}
