package usecase

import (
	"context"
	"time"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}

type ReviewSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// CreateReview stores a review authored by the signed-in user. The author's
// name and email come from the user record, not the request payload.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID, productID string, input CreateReviewInput) (*entity.Review, error) {
	if userID == "" {
		return nil, errors.Unauthorized("Sign in to leave a review", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Unauthorized("Sign in to leave a review", err)
	}

	review := &entity.Review{
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.DisplayName,
		UserEmail: user.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews returns a product's reviews plus the average rating computed
// at read time.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, productID string, page, pageSize int) ([]*entity.Review, int64, *ReviewSummary, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	// One unpaginated fetch yields both the page and the summary; the
	// average covers every review for the product, not just this page
	all, total, err := uc.reviewRepo.ListByProduct(ctx, productID, 0, 0)
	if err != nil {
		return nil, 0, nil, err
	}

	summary := &ReviewSummary{Count: total}
	if len(all) > 0 {
		var sum int
		for _, review := range all {
			sum += review.Rating
		}
		summary.Average = float64(sum) / float64(len(all))
	}

	pageItems := all
	if pageSize > 0 {
		if offset >= len(all) {
			pageItems = []*entity.Review{}
		} else {
			end := offset + pageSize
			if end > len(all) {
				end = len(all)
			}
			pageItems = all[offset:end]
		}
	}

	return pageItems, total, summary, nil
}

// DeleteReview removes a review, but only for its original author.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, userID, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != userID {
		return errors.Forbidden("You can only delete your own reviews", nil)
	}

	return uc.reviewRepo.Delete(ctx, reviewID)
}
