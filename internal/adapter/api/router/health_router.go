package router

import (
	"trueestate/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	infoHandler := handler.GetInfoHandler()

	e.GET("/health", infoHandler.CheckHealth)
}
