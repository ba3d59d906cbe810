package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avion/internal/domain/entity"
	"avion/pkg/errors"
)

func checkoutFixture() (*CheckoutUseCase, *memCartRepo, *memOrderRepo, *fakeGateway) {
	carts := newMemCartRepo()
	orders := &memOrderRepo{}
	gateway := newFakeGateway()
	return NewCheckoutUseCase(carts, orders, gateway, "usd"), carts, orders, gateway
}

func seedCart(t *testing.T, carts *memCartRepo, userID string, items ...entity.CartItem) {
	t.Helper()
	require.NoError(t, carts.SaveCart(context.Background(), &entity.Cart{
		UserID: userID,
		Items:  items,
	}))
}

func TestCreatePaymentIntentEmptyCart(t *testing.T) {
	uc, _, _, _ := checkoutFixture()

	_, err := uc.CreatePaymentIntent(context.Background(), "user-1")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST", appErr.Code)
}

func TestCreatePaymentIntentAmount(t *testing.T) {
	uc, carts, _, _ := checkoutFixture()
	seedCart(t, carts, "user-1",
		entity.CartItem{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 2},
		entity.CartItem{ProductID: "p2", Name: "Rustic Vase", Price: 155.5, Quantity: 1},
	)

	result, err := uc.CreatePaymentIntent(context.Background(), "user-1")
	require.NoError(t, err)

	// 250.00*2 + 155.50 in cents
	assert.Equal(t, int64(65550), result.Amount)
	assert.Equal(t, "usd", result.Currency)
	assert.NotEmpty(t, result.PaymentIntentID)
	assert.NotEmpty(t, result.ClientSecret)
}

func TestConfirmPaymentCreatesOrderAndClearsCart(t *testing.T) {
	uc, carts, orders, gateway := checkoutFixture()
	ctx := context.Background()
	seedCart(t, carts, "user-1",
		entity.CartItem{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 1},
	)

	result, err := uc.CreatePaymentIntent(ctx, "user-1")
	require.NoError(t, err)
	gateway.markSucceeded(result.PaymentIntentID)

	order, err := uc.ConfirmPayment(ctx, "user-1", result.PaymentIntentID)
	require.NoError(t, err)

	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, int64(25000), order.Amount)
	assert.Equal(t, "confirmed", order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)

	stored, err := carts.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.Len(t, orders.orders, 1)
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	uc, carts, orders, gateway := checkoutFixture()
	ctx := context.Background()
	seedCart(t, carts, "user-1",
		entity.CartItem{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 1},
	)

	result, err := uc.CreatePaymentIntent(ctx, "user-1")
	require.NoError(t, err)
	gateway.markSucceeded(result.PaymentIntentID)

	first, err := uc.ConfirmPayment(ctx, "user-1", result.PaymentIntentID)
	require.NoError(t, err)

	// Replay after a client crash returns the recorded order, not a new one
	second, err := uc.ConfirmPayment(ctx, "user-1", result.PaymentIntentID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, orders.orders, 1)
}

func TestConfirmPaymentRecoversFromLostCart(t *testing.T) {
	uc, carts, _, gateway := checkoutFixture()
	ctx := context.Background()
	seedCart(t, carts, "user-1",
		entity.CartItem{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 2},
	)

	result, err := uc.CreatePaymentIntent(ctx, "user-1")
	require.NoError(t, err)
	gateway.markSucceeded(result.PaymentIntentID)

	// Cart expired between intent creation and confirmation
	require.NoError(t, carts.DeleteCart(ctx, "user-1"))

	order, err := uc.ConfirmPayment(ctx, "user-1", result.PaymentIntentID)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(50000), order.Amount)
}

func TestConfirmPaymentNotSucceeded(t *testing.T) {
	uc, carts, orders, _ := checkoutFixture()
	ctx := context.Background()
	seedCart(t, carts, "user-1",
		entity.CartItem{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 1},
	)

	result, err := uc.CreatePaymentIntent(ctx, "user-1")
	require.NoError(t, err)

	_, err = uc.ConfirmPayment(ctx, "user-1", result.PaymentIntentID)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "PAYMENT_FAILED", appErr.Code)
	assert.Empty(t, orders.orders)
}

func TestConfirmPaymentWrongUser(t *testing.T) {
	uc, carts, _, gateway := checkoutFixture()
	ctx := context.Background()
	seedCart(t, carts, "user-1",
		entity.CartItem{ProductID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 1},
	)

	result, err := uc.CreatePaymentIntent(ctx, "user-1")
	require.NoError(t, err)
	gateway.markSucceeded(result.PaymentIntentID)

	_, err = uc.ConfirmPayment(ctx, "user-2", result.PaymentIntentID)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestLineAmountRounding(t *testing.T) {
	assert.Equal(t, int64(1999), lineAmount(19.99, 1))
	assert.Equal(t, int64(5997), lineAmount(19.99, 3))
	assert.Equal(t, int64(10), lineAmount(0.1, 1))
	assert.Equal(t, int64(1999), lineAmount(19.99, 0))
}
