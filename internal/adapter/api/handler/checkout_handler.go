package handler

import (
	"github.com/labstack/echo/v4"

	"avion/internal/usecase"
	"avion/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

// CreatePaymentIntent prices the server-side cart and returns the client
// secret the browser needs to confirm the card payment.
func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.checkoutUseCase.CreatePaymentIntent(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// ConfirmPayment records the order once the gateway reports the intent as
// succeeded. Safe to retry after a dropped connection.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.checkoutUseCase.ConfirmPayment(c.Request().Context(), uid, req.PaymentIntentID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}
