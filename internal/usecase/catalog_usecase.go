package usecase

import (
	"context"
	"strings"

	"avion/internal/domain/entity"
	"avion/internal/domain/repository"
	"avion/pkg/errors"
)

type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Features    []string
	Dimensions  entity.Dimensions
	CategoryID  string
	Tags        []string
	Quantity    int
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]*entity.Product, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(ctx, filter, pageSize, offset)
}

func (uc *CatalogUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, errors.BadRequest("Unknown category", err)
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Features:    input.Features,
		Dimensions:  input.Dimensions,
		CategoryID:  category.ID,
		Category:    category,
		Tags:        input.Tags,
		Quantity:    input.Quantity,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != "" && input.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			return nil, errors.BadRequest("Unknown category", err)
		}
		product.CategoryID = category.ID
		product.Category = category
	}

	product.Name = input.Name
	product.Description = input.Description
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	product.Price = input.Price
	product.Features = input.Features
	product.Dimensions = input.Dimensions
	product.Tags = input.Tags
	product.Quantity = input.Quantity

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.SoftDelete(ctx, id)
}

// SetProductImage records an uploaded image URL on an existing product.
func (uc *CatalogUseCase) SetProductImage(ctx context.Context, id, imageURL string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ImageURL = imageURL
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, name, slug string) (*entity.Category, error) {
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	}

	existing, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Category slug already exists")
	}

	category := &entity.Category{
		Name: name,
		Slug: slug,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
