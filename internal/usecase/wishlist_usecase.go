package usecase

import (
	"context"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// AddToWishlist adds a product once; a duplicate add surfaces as a conflict
// from the repository and the entry is never duplicated. Wishlist entries
// carry no quantity.
func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, userID, productID string) (*entity.WishlistItemWithProduct, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	item, err := uc.wishlistRepo.AddToWishlist(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	return &entity.WishlistItemWithProduct{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Product:   product,
		CreatedAt: item.CreatedAt,
	}, nil
}

func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return uc.wishlistRepo.RemoveFromWishlist(ctx, userID, productID)
}

func (uc *WishlistUseCase) GetUserWishlist(ctx context.Context, userID string, page, pageSize int) ([]*entity.WishlistItemWithProduct, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return uc.wishlistRepo.GetUserWishlist(ctx, userID, pageSize, offset)
}

func (uc *WishlistUseCase) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	return uc.wishlistRepo.IsInWishlist(ctx, userID, productID)
}

func (uc *WishlistUseCase) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	return uc.wishlistRepo.GetWishlistCount(ctx, userID)
}
