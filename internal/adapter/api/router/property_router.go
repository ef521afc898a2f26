package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/domain/service"
	"trueestate/internal/infrastructure/token"

	"github.com/labstack/echo/v4"
)

func SetupPropertyRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	capMiddleware *middleware.CapabilityMiddleware,
	tokens *token.Manager,
) {
	propertyHandler := handler.GetPropertyHandler()

	// Public reads pick up the session when one is present so search history
	// can be recorded.
	properties := e.Group("/v1/properties")
	properties.Use(OptionalAuth(tokens))
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/search", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)

	manage := e.Group("/v1/properties")
	manage.Use(authMiddleware.Authenticate)
	manage.POST("", propertyHandler.CreateProperty, capMiddleware.Require(service.CapPropertyCreate))
	manage.PUT("/:id", propertyHandler.UpdateProperty, capMiddleware.Require(service.CapPropertyUpdate))
	manage.PATCH("/:id", propertyHandler.UpdateProperty, capMiddleware.Require(service.CapPropertyUpdate))
	manage.POST("/:id/images", propertyHandler.UploadImage, capMiddleware.Require(service.CapPropertyUpdate))
}
