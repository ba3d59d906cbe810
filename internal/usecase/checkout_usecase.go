package usecase

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/internal/domain/service"
	"avion/pkg/errors"
	"avion/pkg/logger"
)

type CheckoutUseCase struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	gateway   service.PaymentGatewayService
	currency  string
}

func NewCheckoutUseCase(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	gateway service.PaymentGatewayService,
	currency string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
		currency:  currency,
	}
}

type PaymentIntentResult struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// lineAmount converts a price to minor units before multiplying, so the
// total matches what each line displays.
func lineAmount(price float64, quantity int) int64 {
	if quantity < 1 {
		quantity = 1
	}
	return int64(math.Round(price*100)) * int64(quantity)
}

// CreatePaymentIntent prices the user's server-side cart and opens a payment
// intent for it. The client confirms the card payment with the returned
// client secret; the secret API key never leaves the server.
func (uc *CheckoutUseCase) CreatePaymentIntent(ctx context.Context, userID string) (*PaymentIntentResult, error) {
	cart, err := uc.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	var amount int64
	for _, item := range cart.Items {
		amount += lineAmount(item.Price, item.Quantity)
	}
	if amount <= 0 {
		return nil, errors.BadRequest("Cart total must be positive", nil)
	}

	items, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, errors.Internal("Failed to encode cart items", err)
	}

	intent, err := uc.gateway.CreatePaymentIntent(amount, uc.currency, map[string]string{
		"user_id": userID,
		"items":   string(items),
	})
	if err != nil {
		return nil, errors.PaymentFailed("Failed to create payment intent", err)
	}

	return &PaymentIntentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	}, nil
}

// ConfirmPayment records the order for a succeeded payment intent and clears
// the cart. It is idempotent per intent: replaying the call after a client
// crash returns the already-recorded order, so a successful charge can
// always be reconciled into an order.
func (uc *CheckoutUseCase) ConfirmPayment(ctx context.Context, userID, paymentIntentID string) (*entity.Order, error) {
	existing, err := uc.orderRepo.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.UserID != userID {
			return nil, errors.Forbidden("Payment intent belongs to another user", nil)
		}
		return existing, nil
	}

	intent, err := uc.gateway.GetPaymentIntent(paymentIntentID)
	if err != nil {
		return nil, errors.PaymentFailed("Failed to verify payment intent", err)
	}

	if intent.Metadata["user_id"] != userID {
		return nil, errors.Forbidden("Payment intent belongs to another user", nil)
	}

	if intent.Status != service.IntentStatusSucceeded {
		return nil, errors.PaymentFailed("Payment has not succeeded", nil)
	}

	cart, err := uc.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var items []entity.OrderItem
	if cart != nil {
		for _, item := range cart.Items {
			items = append(items, entity.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				ImageURL:  item.ImageURL,
				Quantity:  item.Quantity,
			})
		}
	}
	if len(items) == 0 {
		// Cart already gone; fall back to the snapshot the intent carries
		var snapshot []entity.CartItem
		if err := json.Unmarshal([]byte(intent.Metadata["items"]), &snapshot); err != nil || len(snapshot) == 0 {
			return nil, errors.BadRequest("No cart found for this payment", nil)
		}
		for _, item := range snapshot {
			items = append(items, entity.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				ImageURL:  item.ImageURL,
				Quantity:  item.Quantity,
			})
		}
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		PaymentIntentID: intent.ID,
		Status:          "confirmed",
		CreatedAt:       time.Now(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.DeleteCart(ctx, userID); err != nil {
		// The order is recorded; a stale cart is an inconvenience, not a loss
		logger.Warn("Failed to clear cart for user %s after checkout: %v", userID, err)
	}

	return order, nil
}
