package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/infrastructure/ratelimit"
	"trueestate/internal/infrastructure/token"
)

func registeredRoutes(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func routerFixture() (*echo.Echo, *middleware.AuthMiddleware, *middleware.CapabilityMiddleware, *middleware.RateLimitMiddleware, *token.Manager) {
	e := echo.New()
	handler.Setup(nil, nil, nil, nil, nil, nil, nil, nil)
	tokens := token.NewManager("test-secret", 3600)
	authMiddleware := middleware.NewAuthMiddleware(tokens)
	capMiddleware := middleware.NewCapabilityMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(ratelimit.NewRateLimiter())
	return e, authMiddleware, capMiddleware, rateLimitMiddleware, tokens
}

func TestPropertyRoutesRegistered(t *testing.T) {
	e, authMiddleware, capMiddleware, _, tokens := routerFixture()

	SetupPropertyRouter(e, authMiddleware, capMiddleware, tokens)

	routes := registeredRoutes(e)
	assert.True(t, routes[http.MethodGet+" /v1/properties"])
	assert.True(t, routes[http.MethodGet+" /v1/properties/search"])
	assert.True(t, routes[http.MethodGet+" /v1/properties/:id"])
	assert.True(t, routes[http.MethodPost+" /v1/properties"])
	assert.True(t, routes[http.MethodPut+" /v1/properties/:id"])
	assert.True(t, routes[http.MethodPatch+" /v1/properties/:id"])
	assert.True(t, routes[http.MethodPost+" /v1/properties/:id/images"])
}

func TestAlertRoutesIncludeDelete(t *testing.T) {
	e, authMiddleware, _, _, _ := routerFixture()

	SetupNotificationRouter(e, authMiddleware)

	routes := registeredRoutes(e)
	assert.True(t, routes[http.MethodGet+" /v1/alerts"])
	assert.True(t, routes[http.MethodPost+" /v1/alerts"])
	assert.True(t, routes[http.MethodDelete+" /v1/alerts/:id"])
}

func TestStreamRouteRegistered(t *testing.T) {
	e, authMiddleware, _, rateLimitMiddleware, _ := routerFixture()

	SetupWebSocketRouter(e, handler.NewWebSocketHandler(nil), authMiddleware, rateLimitMiddleware)

	routes := registeredRoutes(e)
	assert.True(t, routes[http.MethodGet+" /v1/notifications/stream"])
}
