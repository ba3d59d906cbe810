package repository

import (
	"context"

	"avion/internal/domain/entity"
)

// ProductFilter is the conjunction of optional listing clauses. Zero values
// mean "no clause".
type ProductFilter struct {
	Categories []string // category names, OR-ed within the clause
	MinPrice   float64
	MaxPrice   float64
	Search     string // case-insensitive name prefix
	Sort       string // e.g. "price_asc", "price_desc"
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
}
