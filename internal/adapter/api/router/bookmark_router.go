package router

import (
	"trueestate/internal/adapter/api/handler"
	"trueestate/internal/adapter/api/middleware"
	"trueestate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

func SetupBookmarkRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	capMiddleware *middleware.CapabilityMiddleware,
) {
	bookmarkHandler := handler.GetBookmarkHandler()

	bookmarks := e.Group("/v1/bookmarks")
	bookmarks.Use(authMiddleware.Authenticate)
	bookmarks.Use(capMiddleware.Require(service.CapBookmarkManage))
	bookmarks.GET("", bookmarkHandler.ListBookmarks)
	bookmarks.POST("", bookmarkHandler.AddBookmark)
	bookmarks.GET("/:propertyId", bookmarkHandler.CheckBookmark)
	bookmarks.DELETE("/:propertyId", bookmarkHandler.RemoveBookmark)
}
