package router

import (
	"trueestate/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupInfoRouter(e *echo.Echo) {
	infoHandler := handler.GetInfoHandler()

	e.GET("/v1/map-token", infoHandler.GetMapToken)
	e.GET("/v1/neighborhood", infoHandler.GetNeighborhoodInsights)
	e.GET("/v1/demo", infoHandler.GetDemoInfo)
	e.GET("/v1/enterprise", infoHandler.GetEnterpriseInfo)
}
