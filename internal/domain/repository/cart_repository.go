package repository

import (
	"context"

	"avion/internal/domain/entity"
)

type CartRepository interface {
	// GetCart returns (nil, nil) when the user has no cart yet.
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)
	SaveCart(ctx context.Context, cart *entity.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}
