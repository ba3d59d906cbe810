package handler

import (
	"github.com/labstack/echo/v4"

	"avion/internal/usecase"
	"avion/pkg/response"
)

type CategoryHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCategoryHandler(catalogUseCase *usecase.CatalogUseCase) *CategoryHandler {
	return &CategoryHandler{
		catalogUseCase: catalogUseCase,
	}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"omitempty,lowercase"`
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request().Context(), req.Name, req.Slug)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}
