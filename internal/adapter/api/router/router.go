package router

import (
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	capMiddleware *middleware.CapabilityMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	tokens *token.Manager,
) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupPropertyRouter(e, authMiddleware, capMiddleware, tokens)
	SetupOwnerRouter(e, authMiddleware, capMiddleware, rateLimitMiddleware)
	SetupReviewRouter(e, authMiddleware, capMiddleware)
	SetupBookmarkRouter(e, authMiddleware, capMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupExportRouter(e, authMiddleware, capMiddleware, rateLimitMiddleware)
	SetupInfoRouter(e)
	SetupHealthRouter(e)
}
