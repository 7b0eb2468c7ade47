// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package product

import "context"

// # Repository Contracts

// ProductRepository defines the persistence contract for the catalog.
type ProductRepository interface {
	/*
		Search returns products matching the typed filter, ordered and
		paginated according to the filter's sort/limit/skip fields.

		Parameters:
		  - context: context.Context
		  - filter: Filter (typed search criteria)

		Returns:
		  - []Product: Matching products (empty slice when nothing matches)
		  - error: Storage failures
	*/
	Search(context context.Context, filter Filter) ([]Product, error)

	/*
		ListAll returns every product in the catalog, newest first.

		Returns:
		  - []Product: All products (empty slice when the catalog is empty)
		  - error: Storage failures
	*/
	ListAll(context context.Context) ([]Product, error)

	/*
		ListByCategory returns products whose category matches the given
		value case-insensitively.

		Parameters:
		  - context: context.Context
		  - category: string (exact match, case folded)

		Returns:
		  - []Product: Matching products (empty slice when none)
		  - error: Storage failures
	*/
	ListByCategory(context context.Context, category string) ([]Product, error)

	/*
		FindByID retrieves a product together with its reviews and each
		review author's public profile fields.

		Returns:
		  - *Product: Hydrated product with Reviews populated
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Product, error)

	/*
		FindByName retrieves a product by its unique name.

		Returns:
		  - *Product: The product (Reviews not populated)
		  - error: apperr.NotFound or storage failures
	*/
	FindByName(context context.Context, name string) (*Product, error)

	/*
		Create persists a new product. The name carries a UNIQUE constraint;
		a concurrent insert of the same name surfaces as apperr.Duplicate.
	*/
	Create(context context.Context, product *Product) error

	/*
		Update replaces every mutable field of an existing product.

		Returns:
		  - error: apperr.NotFound when the id does not exist
	*/
	Update(context context.Context, product *Product) error

	/*
		Rename changes only the product's display name.

		Returns:
		  - error: apperr.NotFound when the id does not exist,
		    apperr.Duplicate when the new name is taken
	*/
	Rename(context context.Context, id, name string) error

	/*
		Delete removes a product permanently.

		Returns:
		  - error: apperr.NotFound when the id does not exist
	*/
	Delete(context context.Context, id string) error
}
