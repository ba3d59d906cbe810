package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/", healthHandler.CheckHealth)
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/firebase-health", healthHandler.CheckFirebaseHealth)
	e.GET("/redis-health", healthHandler.CheckRedisHealth)
}
