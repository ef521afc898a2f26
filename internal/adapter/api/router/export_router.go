package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

func SetupExportRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	capMiddleware *middleware.CapabilityMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	exportHandler := handler.GetExportHandler()

	export := e.Group("/v1/export")
	export.Use(authMiddleware.Authenticate)
	export.Use(capMiddleware.Require(service.CapExport))
	export.POST("", exportHandler.Export, rateLimitMiddleware.Limit("export"))
}
