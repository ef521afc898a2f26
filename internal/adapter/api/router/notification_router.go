package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.POST("", notificationHandler.CreateNotification)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.PATCH("/read-all", notificationHandler.MarkAllRead)

	alerts := e.Group("/v1/alerts")
	alerts.Use(authMiddleware.Authenticate)
	alerts.GET("", notificationHandler.ListAlerts)
	alerts.POST("", notificationHandler.CreateAlert)
	alerts.DELETE("/:id", notificationHandler.DeleteAlert)

	views := e.Group("/v1/saved-views")
	views.Use(authMiddleware.Authenticate)
	views.GET("", notificationHandler.ListSavedViews)
	views.POST("", notificationHandler.CreateSavedView)
}
