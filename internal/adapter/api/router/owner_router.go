package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

func SetupOwnerRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	capMiddleware *middleware.CapabilityMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	ownerHandler := handler.GetOwnerHandler()

	owners := e.Group("/v1/owners")
	owners.GET("", ownerHandler.ListOwners)
	owners.GET("/search", ownerHandler.ListOwners)
	owners.GET("/:id", ownerHandler.GetOwner)

	manage := e.Group("/v1/owners")
	manage.Use(authMiddleware.Authenticate)
	manage.Use(capMiddleware.Require(service.CapOwnerManage))
	manage.POST("", ownerHandler.CreateOwner)
	manage.GET("/me", ownerHandler.GetMyOwnerProfile)

	e.POST("/v1/owner-verification", ownerHandler.VerifyIdentity,
		authMiddleware.Authenticate,
		capMiddleware.Require(service.CapOwnerManage),
		rateLimitMiddleware.Limit("owner_verification"))
}
