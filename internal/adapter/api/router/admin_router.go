package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	// User management requires the admin role
	admin := e.Group("/v1/admin/users")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly())

	admin.GET("", adminHandler.ListUsers)
	admin.POST("", adminHandler.CreateUser)
	admin.PUT("/:id", adminHandler.UpdateUser)
	admin.DELETE("/:id", adminHandler.DeleteUser)
}
