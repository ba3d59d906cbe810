package handler

import (
	"github.com/labstack/echo/v4"

	"avion/internal/domain/entity"
	"avion/internal/usecase"
	"avion/pkg/response"
	"avion/pkg/utils"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)

	item, err := h.wishlistUseCase.AddToWishlist(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.wishlistUseCase.RemoveFromWishlist(c.Request().Context(), uid, c.Param("productId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Removed from wishlist",
	})
}

func (h *WishlistHandler) GetUserWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.wishlistUseCase.GetUserWishlist(c.Request().Context(), uid, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	if items == nil {
		items = []*entity.WishlistItemWithProduct{}
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *WishlistHandler) CheckWishlistStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	inWishlist, err := h.wishlistUseCase.IsInWishlist(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"in_wishlist": inWishlist,
	})
}

func (h *WishlistHandler) GetWishlistCount(c echo.Context) error {
	uid := c.Get("uid").(string)

	count, err := h.wishlistUseCase.GetWishlistCount(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{
		"count": count,
	})
}
