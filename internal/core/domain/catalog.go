package domain

import "time"

// Category groups products for the public catalog. Slug is the URL-facing
// identifier and must be unique.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// StockStatus is the advertised availability of a product.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockOnOrder    StockStatus = "on_order"
	StockOutOfStock StockStatus = "out_of_stock"
)

// Product is a catalog item. Specifications and Features carry free-form
// structured content authored in the admin console.
type Product struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	CategoryID       string            `json:"category_id" bson:"category_id"`
	CategoryName     string            `json:"category_name,omitempty" bson:"category_name,omitempty"`
	Name             string            `json:"name" bson:"name"`
	Slug             string            `json:"slug" bson:"slug"`
	ShortDescription string            `json:"short_description,omitempty" bson:"short_description,omitempty"`
	FullDescription  string            `json:"full_description,omitempty" bson:"full_description,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`
	Features         []string          `json:"features,omitempty" bson:"features,omitempty"`
	Price            float64           `json:"price" bson:"price"`
	StockStatus      StockStatus       `json:"stock_status" bson:"stock_status"`
	MainImageURL     string            `json:"main_image_url,omitempty" bson:"main_image_url,omitempty"`
	GalleryImages    []string          `json:"gallery_images,omitempty" bson:"gallery_images,omitempty"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}
