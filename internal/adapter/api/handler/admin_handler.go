package handler

import (
	"github.com/labstack/echo/v4"

	"avion/internal/domain/entity"
	"avion/internal/usecase"
	"avion/pkg/response"
	"avion/pkg/utils"
)

type AdminHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewAdminHandler(userUseCase *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{
		userUseCase: userUseCase,
	}
}

type createManagedUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"`
	Role        string `json:"role" validate:"required,oneof=manager admin"`
}

type updateManagedUserRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,min=2,max=100"`
	Role        string `json:"role" validate:"omitempty,oneof=buyer manager admin"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	if users == nil {
		users = []*entity.User{}
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createManagedUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.CreateManagedUser(c.Request().Context(), usecase.CreateManagedUserInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateManagedUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateManagedUser(c.Request().Context(), uid, c.Param("id"), usecase.UpdateManagedUserInput{
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.userUseCase.DeleteManagedUser(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "User deleted successfully",
	})
}
