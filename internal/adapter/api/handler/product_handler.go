package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/internal/usecase"
	"avion/pkg/errors"
	"avion/pkg/response"
	"avion/pkg/utils"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

type dimensionsRequest struct {
	Width  string `json:"width"`
	Height string `json:"height"`
	Depth  string `json:"depth"`
}

type productRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url" validate:"omitempty,url"`
	Price       float64           `json:"price" validate:"required,gt=0"`
	Features    []string          `json:"features"`
	Dimensions  dimensionsRequest `json:"dimensions"`
	CategoryID  string            `json:"category_id" validate:"required"`
	Tags        []string          `json:"tags"`
	Quantity    int               `json:"quantity" validate:"gte=0"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Price:       r.Price,
		Features:    r.Features,
		Dimensions: entity.Dimensions{
			Width:  r.Dimensions.Width,
			Height: r.Dimensions.Height,
			Depth:  r.Dimensions.Depth,
		},
		CategoryID: r.CategoryID,
		Tags:       r.Tags,
		Quantity:   r.Quantity,
	}
}

// ListProducts applies the optional filter clauses as a conjunction:
// category selection, price range and name search narrow the result
// together.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		Categories: c.QueryParams()["category"],
		Search:     c.QueryParam("search"),
		Sort:       c.QueryParam("sort"),
	}

	if minPrice := c.QueryParam("min_price"); minPrice != "" {
		value, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("min_price must be a number", err))
		}
		filter.MinPrice = value
	}
	if maxPrice := c.QueryParam("max_price"); maxPrice != "" {
		value, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("max_price must be a number", err))
		}
		filter.MaxPrice = value
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.catalogUseCase.ListProducts(c.Request().Context(), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	if products == nil {
		products = []*entity.Product{}
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted",
	})
}
