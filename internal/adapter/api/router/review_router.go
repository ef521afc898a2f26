package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	capMiddleware *middleware.CapabilityMiddleware,
) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/properties/:id/reviews", reviewHandler.ListReviews)
	e.GET("/v1/properties/:id/comments", reviewHandler.ListComments)

	write := e.Group("/v1/properties/:id")
	write.Use(authMiddleware.Authenticate)
	write.POST("/reviews", reviewHandler.CreateReview, capMiddleware.Require(service.CapReviewCreate))
	write.POST("/comments", reviewHandler.CreateComment)
}
