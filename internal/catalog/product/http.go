// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
HTTP delivery layer for the product catalog.

It exposes public discovery endpoints (search, listing, detail, category
browsing) and admin-only mutation endpoints.

# Routing Strategy

  - Public: Discovery endpoints accessible to all visitors.
  - Restricted: Mutative endpoints requiring the admin role.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vantran/mercato/internal/platform/middleware"
	requestutil "github.com/vantran/mercato/internal/platform/request"
	"github.com/vantran/mercato/internal/platform/respond"
	"github.com/vantran/mercato/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog management and discovery.
type Handler struct {
	productService *Service
}

// NewHandler constructs a new product [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{productService: service}
}

// Routes returns a [chi.Router] configured with the catalog's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/search", handler.searchProducts)
	router.Get("/", handler.listProducts)
	router.Get("/category/{category}", handler.listByCategory)
	router.Get("/{id}", handler.getProduct)

	// ## Catalog Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createProduct)
		admin.Put("/{id}", handler.updateProduct)
		admin.Patch("/{id}", handler.renameProduct)
		admin.Delete("/{id}", handler.deleteProduct)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/products/search.

Description: Filtered product search. All parameters are optional; malformed
numeric or boolean parameters are rejected rather than ignored.

Request:
  - category, manufacturer: string (case-insensitive exact match)
  - isSale, inStock: bool
  - minDiscount, minPrice, maxPrice: float
  - sortBy: string (newest, priceAsc, priceDesc; unknown values → newest)
  - limit, skip: int (defaults 1000 / 0)

Response:
  - 200: []Product (empty array is a valid result)
  - 400: ErrValidation: Malformed filter parameter
*/
func (handler *Handler) searchProducts(writer http.ResponseWriter, request *http.Request) {
	filter, err := ParseFilter(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	products, err := handler.productService.Search(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
GET /api/v1/products.

Description: Returns the entire catalog, newest first. An empty catalog is
reported as 404, matching the established API contract for this endpoint.

Response:
  - 200: []Product
  - 404: ErrNotFound: The catalog holds no products
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.productService.ListProducts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
GET /api/v1/products/category/{category}.

Description: Lists products in a category. Matching is case-insensitive and
exact ("Laptops" and "laptops" address the same shelf).

Response:
  - 200: []Product
  - 404: ErrNotFound: No products in this category
*/
func (handler *Handler) listByCategory(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.Param(request, "category")

	products, err := handler.productService.ListByCategory(request.Context(), category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
GET /api/v1/products/{id}.

Description: Retrieves a single product with its reviews and each review
author's public profile fields.

Response:
  - 200: Product
  - 404: ErrNotFound: Product does not exist
*/
func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	product, err := handler.productService.GetProduct(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

// # Request Payloads

// productRequest defines the inbound JSON schema for create and full update.
type productRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Manufacturer    string  `json:"manufacturer"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount"`
	IsSale          bool    `json:"isSale"`
	SalePrice       float64 `json:"salePrice"`
	QuantityInStock int     `json:"quantityInStock"`
	Description     string  `json:"description"`
	Image           Image   `json:"image"`
}

// toEntity maps the payload onto a domain entity.
func (payload *productRequest) toEntity() *Product {
	return &Product{
		Name:            payload.Name,
		Category:        payload.Category,
		Manufacturer:    payload.Manufacturer,
		Price:           payload.Price,
		Discount:        payload.Discount,
		IsSale:          payload.IsSale,
		SalePrice:       payload.SalePrice,
		QuantityInStock: payload.QuantityInStock,
		Description:     payload.Description,
		Image:           payload.Image,
	}
}

// renameRequest defines the inbound JSON schema for the rename-only PATCH.
type renameRequest struct {
	ProductName string `json:"product_name"`
}

// # Mutation Endpoints

/*
POST /api/v1/products.

Description: Creates a new product. The slug is generated from the name.

Request (Body):
  - productRequest: JSON object

Response:
  - 201: Product: Created product
  - 400: ErrValidation/DUPLICATE: Invalid payload or name already taken
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Caller is not an admin
*/
func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input productRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product := input.toEntity()
	if err := handler.productService.CreateProduct(request.Context(), product); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}

/*
PUT /api/v1/products/{id}.

Description: Full replacement of a product's mutable fields.

Response:
  - 200: Product: Updated product
  - 400: ErrValidation/DUPLICATE
  - 404: ErrNotFound: Product does not exist
*/
func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	var input productRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product := input.toEntity()
	product.ID = requestutil.ID(request, "id")

	if err := handler.productService.UpdateProduct(request.Context(), product); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

/*
PATCH /api/v1/products/{id}.

Description: Renames a product. Only product_name is accepted; every other
attribute is left untouched.

Request (Body):
  - product_name: string (required)

Response:
  - 204: Renamed
  - 400: ErrValidation/DUPLICATE
  - 404: ErrNotFound: Product does not exist
*/
func (handler *Handler) renameProduct(writer http.ResponseWriter, request *http.Request) {
	var input renameRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	if err := handler.productService.RenameProduct(request.Context(), id, input.ProductName); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/products/{id}.

Description: Permanently removes a product. A subsequent GET returns 404.

Response:
  - 204: Deleted
  - 404: ErrNotFound: Product does not exist
*/
func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.productService.DeleteProduct(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
