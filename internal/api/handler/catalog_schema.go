package handler

import "github.com/amaris/catalog-api/internal/core/domain"

// Write shapes for catalog mutations. Read responses reuse the domain types
// directly; the public catalog JSON is their canonical representation.

type categoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Slug        string `json:"slug"        validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type productRequest struct {
	CategoryID       string            `json:"category_id"`
	Name             string            `json:"name"          validate:"required"`
	Slug             string            `json:"slug"          validate:"required"`
	ShortDescription string            `json:"short_description"`
	FullDescription  string            `json:"full_description"`
	Specifications   map[string]string `json:"specifications"`
	Features         []string          `json:"features"`
	Price            float64           `json:"price"         validate:"gte=0"`
	StockStatus      string            `json:"stock_status"  validate:"omitempty,oneof=in_stock on_order out_of_stock"`
	MainImageURL     string            `json:"main_image_url"`
	GalleryImages    []string          `json:"gallery_images"`
}

type categoryListResponse struct {
	Records []domain.Category `json:"records"`
}

type productListResponse struct {
	Records []domain.Product `json:"records"`
}
