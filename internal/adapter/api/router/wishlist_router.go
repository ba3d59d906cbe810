package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	// All wishlist endpoints require authentication
	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate)

	wishlist.GET("", wishlistHandler.GetUserWishlist)
	wishlist.GET("/count", wishlistHandler.GetWishlistCount)
	wishlist.POST("/:productId", wishlistHandler.AddToWishlist)
	wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
	wishlist.GET("/:productId/status", wishlistHandler.CheckWishlistStatus)
}
