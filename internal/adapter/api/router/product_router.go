package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()
	fileHandler := handler.GetFileHandler()

	// Public catalog reads
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	// Catalog writes require manager or admin role
	managed := e.Group("/v1/admin/products")
	managed.Use(authMiddleware.Authenticate)
	managed.Use(roleMiddleware.ManagerOnly())
	managed.POST("", productHandler.CreateProduct)
	managed.PUT("/:id", productHandler.UpdateProduct)
	managed.DELETE("/:id", productHandler.DeleteProduct)
	managed.POST("/:id/image", fileHandler.UploadProductImage)
}
