package handler

import (
	"avion/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	adminHandler    *AdminHandler
	productHandler  *ProductHandler
	categoryHandler *CategoryHandler
	cartHandler     *CartHandler
	wishlistHandler *WishlistHandler
	checkoutHandler *CheckoutHandler
	orderHandler    *OrderHandler
	reviewHandler   *ReviewHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	cartUseCase *usecase.CartUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	orderUseCase *usecase.OrderUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	adminHandler = NewAdminHandler(userUseCase)
	productHandler = NewProductHandler(catalogUseCase)
	categoryHandler = NewCategoryHandler(catalogUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
