package repository

import (
	"context"

	"avion/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetByPaymentIntentID returns (nil, nil) when no order exists for the
	// intent. Used to keep checkout confirmation idempotent.
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
}
