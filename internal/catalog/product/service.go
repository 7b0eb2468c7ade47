// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package product

import (
	"context"
	"log/slog"
	"time"

	"github.com/vantran/mercato/internal/platform/apperr"
	"github.com/vantran/mercato/internal/platform/validate"
	"github.com/vantran/mercato/pkg/slug"
	"github.com/vantran/mercato/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for the product catalog.
// It acts as the primary entry point for discovery and management.
type Service struct {
	productRepository ProductRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(productRepo ProductRepository, logger *slog.Logger) *Service {
	return &Service{
		productRepository: productRepo,
		logger:            logger,
	}
}

// # Discovery

/*
Search retrieves products matching the typed filter.

Description: The filter has already been parsed and validated at the HTTP
layer; the service passes it straight to the repository. An empty result is
a valid outcome for a search.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - []Product: Matching products, possibly empty
  - error: Storage failures
*/
func (service *Service) Search(context context.Context, filter Filter) ([]Product, error) {
	return service.productRepository.Search(context, filter)
}

/*
ListProducts returns the entire catalog.

Description: Unlike Search, an empty catalog is reported as NotFound. The
public listing endpoint treats "no products at all" as a missing resource.

Returns:
  - []Product: Every product, newest first
  - error: apperr.NotFound when the catalog is empty, or storage failures
*/
func (service *Service) ListProducts(context context.Context) ([]Product, error) {
	products, err := service.productRepository.ListAll(context)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.NotFound("Products")
	}
	return products, nil
}

/*
ListByCategory returns products in a category (case-insensitive match).

Returns:
  - []Product: Matching products
  - error: apperr.NotFound when the category has no products
*/
func (service *Service) ListByCategory(context context.Context, category string) ([]Product, error) {
	if category == "" {
		return nil, validate.RequiredError(FieldCategory, "This field is required")
	}

	products, err := service.productRepository.ListByCategory(context, category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperr.NotFound("Products")
	}
	return products, nil
}

/*
GetProduct retrieves a single product with its reviews hydrated.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Product: Hydrated product
  - error: apperr.NotFound if missing
*/
func (service *Service) GetProduct(context context.Context, id string) (*Product, error) {
	return service.productRepository.FindByID(context, id)
}

// # Management

/*
CreateProduct initialises a new catalog entry.

Description: Validates the business attributes, rejects duplicate names with
a friendly error before attempting the insert, generates a stable UUIDv7
identity and a URL slug, then persists. The UNIQUE constraint on the name
column remains the hard guarantee against concurrent duplicates.

Parameters:
  - context: context.Context
  - product: *Product (the entity to persist; ID/Slug/timestamps assigned here)

Returns:
  - error: Validation, duplicate, or persistence errors
*/
func (service *Service) CreateProduct(context context.Context, product *Product) error {

	if err := validateProduct(product); err != nil {
		return err
	}

	// Friendly duplicate pre-check; the constraint catches the race.
	if _, err := service.productRepository.FindByName(context, product.Name); err == nil {
		return apperr.Duplicate("Product name already exists")
	}

	// Identity & Slug generation
	product.ID = uuid.New()
	product.Slug = slug.From(product.Name)

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := service.productRepository.Create(context, product); err != nil {
		return err
	}

	service.logger.Info("product_created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return nil
}

/*
UpdateProduct replaces every mutable field of an existing product.

Description: This is a full PUT-style replacement, not a merge. The slug is
regenerated from the new name so the two never drift apart.

Parameters:
  - context: context.Context
  - product: *Product (target ID plus the replacement state)

Returns:
  - error: Validation errors, apperr.NotFound, or persistence errors
*/
func (service *Service) UpdateProduct(context context.Context, product *Product) error {

	if err := validateProduct(product); err != nil {
		return err
	}

	product.Slug = slug.From(product.Name)

	if err := service.productRepository.Update(context, product); err != nil {
		return err
	}

	service.logger.Info("product_updated", slog.String("product_id", product.ID))

	return nil
}

/*
RenameProduct changes only the product's display name.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - name: string (the new display name, required)

Returns:
  - error: Validation errors, apperr.NotFound, apperr.Duplicate
*/
func (service *Service) RenameProduct(context context.Context, id, name string) error {

	validator := &validate.Validator{}
	validator.Required(FieldProductName, name).MaxLen(FieldProductName, name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.productRepository.Rename(context, id, name); err != nil {
		return err
	}

	service.logger.Info("product_renamed",
		slog.String("product_id", id),
		slog.String("name", name),
	)

	return nil
}

/*
DeleteProduct removes a product permanently.

Returns:
  - error: apperr.NotFound when the product does not exist
*/
func (service *Service) DeleteProduct(context context.Context, id string) error {
	if err := service.productRepository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("product_deleted", slog.String("product_id", id))

	return nil
}

// validateProduct enforces the business rules shared by create and update.
func validateProduct(product *Product) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, product.Name).MaxLen(FieldName, product.Name, 200)
	validator.Required(FieldCategory, product.Category)
	validator.Required(FieldManufacturer, product.Manufacturer)

	validator.NonNegative(FieldPrice, product.Price)
	validator.NonNegative(FieldDiscount, product.Discount)
	validator.NonNegative(FieldSalePrice, product.SalePrice)
	validator.Custom(FieldQuantityInStock, product.QuantityInStock < 0, "Must not be negative")

	// A sale needs a sale price below the regular price to mean anything.
	validator.Custom(FieldSalePrice,
		product.IsSale && product.SalePrice > product.Price,
		"Must not exceed the regular price")

	return validator.Err()
}
