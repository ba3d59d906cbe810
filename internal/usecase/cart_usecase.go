package usecase

import (
	"context"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart never fails on an absent cart; an empty cart is a valid state.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &entity.Cart{UserID: userID, Items: []entity.CartItem{}}
	}
	return cart, nil
}

// AddItem puts a product in the cart. Adding a product that is already
// present increments its quantity instead of creating a second line.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Quantity < 1 {
		return nil, errors.BadRequest("Product is out of stock", nil)
	}

	cart, err := uc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if item := cart.FindItem(productID); item != nil {
		item.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  quantity,
		})
	}

	if err := uc.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	cart, err := uc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(productID)
	if item == nil {
		return nil, errors.NotFound("Cart item", nil)
	}
	item.Quantity = quantity

	if err := uc.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem drops exactly the line matching productID and leaves the rest
// untouched.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	cart, err := uc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == productID && !found {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return nil, errors.NotFound("Cart item", nil)
	}
	cart.Items = items

	if err := uc.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartRepo.DeleteCart(ctx, userID)
}

// MergeItems folds a guest cart into the user's cart, summing quantities on
// id match. Unknown or deleted products are skipped.
func (uc *CartUseCase) MergeItems(ctx context.Context, userID string, incoming []entity.CartItem) (*entity.Cart, error) {
	cart, err := uc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, in := range incoming {
		if in.Quantity < 1 {
			in.Quantity = 1
		}

		product, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			continue
		}

		if item := cart.FindItem(in.ProductID); item != nil {
			item.Quantity += in.Quantity
		} else {
			cart.Items = append(cart.Items, entity.CartItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				ImageURL:  product.ImageURL,
				Quantity:  in.Quantity,
			})
		}
	}

	if err := uc.cartRepo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}
