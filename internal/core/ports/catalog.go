package ports

import (
	"context"

	"github.com/amaris/catalog-api/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// List returns all products, or only those in categoryID when non-empty.
	List(ctx context.Context, categoryID string) ([]domain.Product, error)
	Search(ctx context.Context, keywords string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CategoryInput is the write shape for category create/update.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	ImageURL    string
}

// ProductInput is the write shape for product create/update.
type ProductInput struct {
	CategoryID       string
	Name             string
	Slug             string
	ShortDescription string
	FullDescription  string
	Specifications   map[string]string
	Features         []string
	Price            float64
	StockStatus      domain.StockStatus
	MainImageURL     string
	GalleryImages    []string
}

// CatalogService owns the public catalog: categories and products.
type CatalogService interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keywords string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
