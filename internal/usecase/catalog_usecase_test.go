package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
)

func catalogFixture() (*CatalogUseCase, *memProductRepo, *memCategoryRepo) {
	chairs := &entity.Category{ID: "c1", Name: "Chairs", Slug: "chairs"}
	ceramics := &entity.Category{ID: "c2", Name: "Ceramics", Slug: "ceramics"}
	categories := newMemCategoryRepo(chairs, ceramics)
	products := newMemProductRepo(
		&entity.Product{ID: "p1", Name: "Dandy Chair", Price: 250, Quantity: 10, CategoryID: "c1", Category: chairs},
		&entity.Product{ID: "p2", Name: "Dining Chair", Price: 180, Quantity: 5, CategoryID: "c1", Category: chairs},
		&entity.Product{ID: "p3", Name: "Rustic Vase", Price: 155, Quantity: 3, CategoryID: "c2", Category: ceramics},
	)
	return NewCatalogUseCase(products, categories), products, categories
}

func TestListProductsByCategory(t *testing.T) {
	uc, _, _ := catalogFixture()

	products, total, err := uc.ListProducts(context.Background(), repository.ProductFilter{
		Categories: []string{"Chairs"},
	}, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	for _, p := range products {
		assert.Equal(t, "c1", p.CategoryID)
	}
}

func TestListProductsPriceRange(t *testing.T) {
	uc, _, _ := catalogFixture()

	_, total, err := uc.ListProducts(context.Background(), repository.ProductFilter{
		MinPrice: 160,
		MaxPrice: 300,
	}, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
}

func TestListProductsPagination(t *testing.T) {
	uc, _, _ := catalogFixture()

	page, total, err := uc.ListProducts(context.Background(), repository.ProductFilter{}, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	uc, _, _ := catalogFixture()

	_, err := uc.CreateProduct(context.Background(), ProductInput{
		Name:       "Ghost Chair",
		Price:      99,
		CategoryID: "nope",
	})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST", appErr.Code)
}

func TestCreateProductResolvesCategory(t *testing.T) {
	uc, _, _ := catalogFixture()

	product, err := uc.CreateProduct(context.Background(), ProductInput{
		Name:       "Lounge Chair",
		Price:      425,
		CategoryID: "c1",
		Quantity:   7,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Chairs", product.Category.Name)
}

func TestDeleteProductHidesFromListing(t *testing.T) {
	uc, _, _ := catalogFixture()
	ctx := context.Background()

	require.NoError(t, uc.DeleteProduct(ctx, "p1"))

	_, err := uc.GetProductByID(ctx, "p1")
	require.Error(t, err)

	_, total, err := uc.ListProducts(ctx, repository.ProductFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCreateCategorySlug(t *testing.T) {
	uc, _, _ := catalogFixture()

	category, err := uc.CreateCategory(context.Background(), "Plant Pots", "")
	require.NoError(t, err)
	assert.Equal(t, "plant-pots", category.Slug)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	uc, _, _ := catalogFixture()

	_, err := uc.CreateCategory(context.Background(), "More Chairs", "chairs")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}
