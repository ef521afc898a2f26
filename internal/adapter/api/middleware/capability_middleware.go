package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trueestate/internal/domain/service"
)

// CapabilityMiddleware gates routes on what the caller's role can do. The
// capability set is looked up from the role on every request, never read
// from the token, so a role change takes effect on the next call.
type CapabilityMiddleware struct{}

func NewCapabilityMiddleware() *CapabilityMiddleware {
	return &CapabilityMiddleware{}
}

func (m *CapabilityMiddleware) Require(capability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			if !service.RoleHasCapability(role, capability) {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
