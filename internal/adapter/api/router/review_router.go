package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	// Anyone can read reviews
	e.GET("/v1/products/:id/reviews", reviewHandler.ListReviews)

	// Writing and deleting require a signed-in author
	protected := e.Group("/v1/products/:id/reviews")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", reviewHandler.CreateReview)
	protected.DELETE("/:reviewId", reviewHandler.DeleteReview)
}
