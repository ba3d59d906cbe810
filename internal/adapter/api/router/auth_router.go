package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes, rate limited per client IP
	public := e.Group("/v1/auth")
	public.Use(middleware.AuthRateLimit())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.GET("/me", authHandler.Me)
	protected.POST("/password", authHandler.UpdatePassword)
}
