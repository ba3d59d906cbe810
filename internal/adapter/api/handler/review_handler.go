package handler

import (
	"github.com/labstack/echo/v4"

	"avion/internal/domain/entity"
	"avion/internal/usecase"
	"avion/pkg/response"
	"avion/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=3"`
}

type reviewListResponse struct {
	Reviews []*entity.Review      `json:"reviews"`
	Summary *usecase.ReviewSummary `json:"summary"`
	Total   int64                 `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), uid, c.Param("id"), usecase.CreateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	reviews, total, summary, err := h.reviewUseCase.ListReviews(c.Request().Context(), c.Param("id"), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return response.Success(c, reviewListResponse{
		Reviews: reviews,
		Summary: summary,
		Total:   total,
		Page:    pagination.Page,
		Limit:   pagination.PageSize,
	})
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), uid, c.Param("reviewId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review deleted successfully",
	})
}
