// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
Package product defines the core domain entities for the Mercato catalog.

It manages the lifecycle of sellable goods including pricing, stock levels,
sale campaigns, and customer reviews.

Core Responsibility:

  - Catalog: Defines the product aggregate with pricing and inventory fields.
  - Discovery: Search filters, category browsing, and URL slugs.
  - Reviews: Customer reviews hydrated into the product detail view.

This package acts as the source of truth for all catalog-related data models.
*/
package product

import (
	"time"

	"github.com/vantran/mercato/internal/users/auth"
)

// # Core Entities

// Product is the central aggregate of the Mercato catalog.
// It represents a single sellable good.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"` // Unique across the catalog
	Slug         string `json:"slug"` // URL-safe identifier, generated from Name
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`

	// # Pricing
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	IsSale    bool    `json:"isSale"`
	SalePrice float64 `json:"salePrice"`

	QuantityInStock int    `json:"quantityInStock"`
	Description     string `json:"description"`
	Image           Image  `json:"image"`

	// Reviews are hydrated on detail lookups only; list queries leave it nil.
	Reviews []Review `json:"reviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Image holds the display asset for a product.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Review represents a customer review attached to a [Product].
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// Author carries the reviewer's public fields, resolved at read time.
	Author *auth.PublicProfile `json:"author,omitempty"`
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldProductName     = "product_name" // PATCH rename payload key
	FieldSlug            = "slug"
	FieldCategory        = "category"
	FieldManufacturer    = "manufacturer"
	FieldPrice           = "price"
	FieldDiscount        = "discount"
	FieldQuantityInStock = "quantityInStock"
	FieldIsSale          = "isSale"
	FieldSalePrice       = "salePrice"
	FieldDescription     = "description"
	FieldImage           = "image"
)
