package handler

import (
	"github.com/labstack/echo/v4"

	"avion/internal/usecase"
	"avion/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,min=2,max=100"`
	Username    string `json:"username" validate:"omitempty,min=3,max=30"`
	Phone       string `json:"phone" validate:"omitempty,min=6,max=20"`
	Address     string `json:"address" validate:"omitempty,max=500"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetUserProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Username:    req.Username,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
