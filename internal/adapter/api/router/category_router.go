package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

func SetupCategoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/v1/categories", categoryHandler.ListCategories)

	managed := e.Group("/v1/admin/categories")
	managed.Use(authMiddleware.Authenticate)
	managed.Use(roleMiddleware.ManagerOnly())
	managed.POST("", categoryHandler.CreateCategory)
}
