package repository

import (
	"context"

	"avion/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error)
	Delete(ctx context.Context, id string) error
}
