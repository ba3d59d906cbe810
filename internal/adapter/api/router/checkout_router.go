package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/handler"
	"avion/internal/adapter/api/middleware"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)

	checkout.POST("/payment-intent", checkoutHandler.CreatePaymentIntent)
	checkout.POST("/confirm", checkoutHandler.ConfirmPayment)
}
