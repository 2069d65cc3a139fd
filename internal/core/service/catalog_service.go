package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// CatalogService owns categories and products.
type CatalogService struct {
	categories ports.CategoryRepository
	products   ports.ProductRepository
	log        zerolog.Logger
}

func NewCatalogService(categories ports.CategoryRepository, products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{categories: categories, products: products, log: log}
}

// --- Categories ---

func (s *CatalogService) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("category created")
	return category, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categories.FindBySlug(ctx, slug)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input ports.CategoryInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = input.Slug
	category.Description = input.Description
	category.ImageURL = input.ImageURL
	category.UpdatedAt = time.Now().UTC()

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// --- Products ---

func (s *CatalogService) CreateProduct(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	categoryName, err := s.resolveCategoryName(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:               uuid.NewString(),
		CategoryID:       input.CategoryID,
		CategoryName:     categoryName,
		Name:             input.Name,
		Slug:             input.Slug,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Specifications:   input.Specifications,
		Features:         input.Features,
		Price:            input.Price,
		StockStatus:      input.StockStatus,
		MainImageURL:     input.MainImageURL,
		GalleryImages:    input.GalleryImages,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if product.StockStatus == "" {
		product.StockStatus = domain.StockInStock
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", product.ID).Str("slug", product.Slug).Msg("product created")
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.FindBySlug(ctx, slug)
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.products.List(ctx, categoryID)
}

func (s *CatalogService) SearchProducts(ctx context.Context, keywords string) ([]domain.Product, error) {
	return s.products.Search(ctx, keywords)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryName, err := s.resolveCategoryName(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.CategoryName = categoryName
	product.Name = input.Name
	product.Slug = input.Slug
	product.ShortDescription = input.ShortDescription
	product.FullDescription = input.FullDescription
	product.Specifications = input.Specifications
	product.Features = input.Features
	product.Price = input.Price
	product.StockStatus = input.StockStatus
	product.MainImageURL = input.MainImageURL
	product.GalleryImages = input.GalleryImages
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// resolveCategoryName denormalizes the category name onto the product so
// catalog listings need no join. An empty category id is allowed.
func (s *CatalogService) resolveCategoryName(ctx context.Context, categoryID string) (string, error) {
	if categoryID == "" {
		return "", nil
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return "", domain.ErrCategoryNotFound
		}
		return "", err
	}
	return category.Name, nil
}
