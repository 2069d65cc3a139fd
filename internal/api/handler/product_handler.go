package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /v1/products (public), optionally filtered by category.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category_id  query     string  false  "Filter by category id"
// @Success      200          {object}  productListResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context(), c.QueryParam("category_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Records: products})
}

// Search handles GET /v1/products/search?keywords= (public).
//
// @Summary      Search products by keywords
// @Tags         products
// @Produce      json
// @Param        keywords  query     string  true  "Search keywords"
// @Success      200       {object}  productListResponse
// @Router       /v1/products/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	keywords := c.QueryParam("keywords")
	if keywords == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "keywords is required")
	}
	products, err := h.service.SearchProducts(c.Request().Context(), keywords)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Records: products})
}

// Get handles GET /v1/products/:id (public).
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// GetBySlug handles GET /v1/products/slug/:slug (public).
//
// @Summary      Get a product by slug
// @Tags         products
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /v1/products/slug/{slug} [get]
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	product, err := h.service.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.CreateProduct(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /v1/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      204  "product deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Specifications:   req.Specifications,
		Features:         req.Features,
		Price:            req.Price,
		StockStatus:      domain.StockStatus(req.StockStatus),
		MainImageURL:     req.MainImageURL,
		GalleryImages:    req.GalleryImages,
	}
}
