package router

import (
	"github.com/labstack/echo/v4"

	"avion/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupCategoryRouter(e, authMiddleware, roleMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupCheckoutRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
