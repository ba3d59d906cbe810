package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// RequireRole gates a route to the given roles. A request whose role cannot
// be resolved is treated as unauthenticated, never as an error.
func (m *RoleMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok || uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges")
			}

			for _, role := range roles {
				if user.Role == role {
					c.Set("role", user.Role)
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges")
		}
	}
}

// ManagerOnly allows managers and admins (catalog management).
func (m *RoleMiddleware) ManagerOnly() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleManager, entity.RoleAdmin)
}

// AdminOnly allows admins alone (user account management).
func (m *RoleMiddleware) AdminOnly() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin)
}
