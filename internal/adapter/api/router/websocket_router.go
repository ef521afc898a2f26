package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(
	e *echo.Echo,
	wsHandler *handler.WebSocketHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	e.GET("/v1/notifications/stream", wsHandler.HandleStream,
		authMiddleware.Authenticate,
		rateLimitMiddleware.Limit("stream"))
}
