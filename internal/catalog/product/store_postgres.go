// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
PostgreSQL implementation of the catalog's data access.

It leans on Postgres features to keep the hot read paths cheap:
  - JSON Aggregation: Reviews and their authors are folded into the product
    detail row with json_agg, avoiding N+1 lookups.
  - Dynamic filtering: The search query is assembled with a strings.Builder
    and positional arguments only; filter values never enter the SQL text.
  - UNIQUE constraints: Duplicate product names are caught by the database
    (SQLSTATE 23505) regardless of application-level pre-checks.
*/
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantran/mercato/internal/platform/apperr"
	"github.com/vantran/mercato/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresProductRepository implements the [ProductRepository] interface using pgx.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository constructs a PostgreSQL backed catalog store.
func NewProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// productColumns is the canonical column list for scanning a product row.
const productColumns = `id, name, slug, category, manufacturer, price, discount,
	issale, saleprice, quantityinstock, description, image, createdat, updatedat`

// scanProduct maps one row onto a [Product]. The row must follow the
// productColumns order.
func scanProduct(row pgx.Row, product *Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Category,
		&product.Manufacturer,
		&product.Price,
		&product.Discount,
		&product.IsSale,
		&product.SalePrice,
		&product.QuantityInStock,
		&product.Description,
		&product.Image,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}

/*
Search returns products matching the typed filter.

Description: The WHERE clause is constructed dynamically from the filter's
populated dimensions using the positional-argument counter pattern. String
dimensions (category, manufacturer) match case-insensitively; numeric bounds
are inclusive. Sorting degrades to newest-first for the default order.

Parameters:
  - context: context.Context
  - filter: Filter (typed search criteria with defaults applied)

Returns:
  - []Product: Matching products, possibly empty
  - error: Database execution errors
*/
func (repository *PostgresProductRepository) Search(context context.Context, filter Filter) ([]Product, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(`SELECT ` + productColumns + ` FROM catalog.product WHERE 1=1`)

	// String dimensions
	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND LOWER(category) = LOWER($%d)", argID))
		args = append(args, filter.Category)
		argID++
	}
	if filter.Manufacturer != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND LOWER(manufacturer) = LOWER($%d)", argID))
		args = append(args, filter.Manufacturer)
		argID++
	}

	// Boolean dimensions
	if filter.IsSale != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND issale = $%d", argID))
		args = append(args, *filter.IsSale)
		argID++
	}
	if filter.InStock != nil {
		if *filter.InStock {
			queryBuilder.WriteString(" AND quantityinstock > 0")
		} else {
			queryBuilder.WriteString(" AND quantityinstock = 0")
		}
	}

	// Numeric range dimensions
	if filter.MinDiscount != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND discount >= $%d", argID))
		args = append(args, *filter.MinDiscount)
		argID++
	}
	if filter.MinPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND price >= $%d", argID))
		args = append(args, *filter.MinPrice)
		argID++
	}
	if filter.MaxPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND price <= $%d", argID))
		args = append(args, *filter.MaxPrice)
		argID++
	}

	// Apply Sorting. The id tiebreak keeps pagination stable for equal prices.
	switch filter.SortBy {
	case SortPriceAsc:
		queryBuilder.WriteString(" ORDER BY price ASC, id ASC")
	case SortPriceDesc:
		queryBuilder.WriteString(" ORDER BY price DESC, id ASC")
	default:
		queryBuilder.WriteString(" ORDER BY createdat DESC, id DESC")
	}

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, filter.Limit, filter.Skip)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_product_repo_search_failed: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

/*
ListAll returns the entire catalog ordered newest-first.

Returns:
  - []Product: Every product (empty slice for an empty catalog)
  - error: Database execution errors
*/
func (repository *PostgresProductRepository) ListAll(context context.Context) ([]Product, error) {
	const query = `SELECT ` + productColumns + ` FROM catalog.product ORDER BY createdat DESC, id DESC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_product_repo_list_failed: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

/*
ListByCategory returns products in a category, matched case-insensitively.

Parameters:
  - context: context.Context
  - category: string (exact value, folded for comparison)

Returns:
  - []Product: Matching products (empty slice when the category is unknown)
  - error: Database execution errors
*/
func (repository *PostgresProductRepository) ListByCategory(context context.Context, category string) ([]Product, error) {
	const query = `SELECT ` + productColumns + `
		FROM catalog.product
		WHERE LOWER(category) = LOWER($1)
		ORDER BY createdat DESC, id DESC`

	rows, err := repository.pool.Query(context, query, category)
	if err != nil {
		return nil, fmt.Errorf("postgres_product_repo_list_by_category_failed: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

/*
FindByID retrieves a product with its reviews and each author's public fields.

Description: A json_agg sub-query folds the reviews, joined against the
account table for the author's first/last name and avatar, into a single JSON
column. One round-trip hydrates the full detail view.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - *Product: Fully hydrated product with Reviews populated
  - error: apperr.NotFound if missing, otherwise execution errors
*/
func (repository *PostgresProductRepository) FindByID(context context.Context, id string) (*Product, error) {
	const query = `
		SELECT p.id, p.name, p.slug, p.category, p.manufacturer, p.price, p.discount,
			p.issale, p.saleprice, p.quantityinstock, p.description, p.image,
			p.createdat, p.updatedat,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', r.id,
					'productId', r.productid,
					'userId', r.userid,
					'rating', r.rating,
					'comment', r.comment,
					'createdAt', r.createdat,
					'author', json_build_object(
						'id', a.id,
						'firstName', a.profile->>'firstName',
						'lastName', a.profile->>'lastName',
						'avatar', a.profile->'avatar'
					)
				) ORDER BY r.createdat DESC)
				FROM catalog.review r
				JOIN users.account a ON a.id = r.userid
				WHERE r.productid = p.id
			), '[]') AS reviews
		FROM catalog.product p
		WHERE p.id = $1`

	product := &Product{}
	var reviewsJSON []byte

	err := repository.pool.QueryRow(context, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Category,
		&product.Manufacturer,
		&product.Price,
		&product.Discount,
		&product.IsSale,
		&product.SalePrice,
		&product.QuantityInStock,
		&product.Description,
		&product.Image,
		&product.CreatedAt,
		&product.UpdatedAt,
		&reviewsJSON,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product")
		}
		return nil, fmt.Errorf("postgres_product_repo_find_by_id_failed: %w", err)
	}

	if err := json.Unmarshal(reviewsJSON, &product.Reviews); err != nil {
		return nil, fmt.Errorf("postgres_product_repo_reviews_unmarshal_failed: %w", err)
	}

	return product, nil
}

/*
FindByName retrieves a product by its unique display name.

Returns:
  - *Product: The product without reviews
  - error: apperr.NotFound if missing, otherwise execution errors
*/
func (repository *PostgresProductRepository) FindByName(context context.Context, name string) (*Product, error) {
	const query = `SELECT ` + productColumns + ` FROM catalog.product WHERE name = $1`

	product := &Product{}
	if err := scanProduct(repository.pool.QueryRow(context, query, name), product); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Product")
		}
		return nil, fmt.Errorf("postgres_product_repo_find_by_name_failed: %w", err)
	}

	return product, nil
}

/*
Create persists a new product.

Description: The name column carries a UNIQUE constraint. When two requests
race past the service-level pre-check, the loser's insert fails with SQLSTATE
23505 and is surfaced as apperr.Duplicate.

Parameters:
  - context: context.Context
  - product: *Product (ID, Slug, and timestamps already assigned)

Returns:
  - error: apperr.Duplicate on name collision, otherwise execution errors
*/
func (repository *PostgresProductRepository) Create(context context.Context, product *Product) error {
	const query = `
		INSERT INTO catalog.product (
			id, name, slug, category, manufacturer, price, discount,
			issale, saleprice, quantityinstock, description, image,
			createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := repository.pool.Exec(context, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Category,
		product.Manufacturer,
		product.Price,
		product.Discount,
		product.IsSale,
		product.SalePrice,
		product.QuantityInStock,
		product.Description,
		product.Image,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Duplicate("Product name already exists")
		}
		return fmt.Errorf("postgres_product_repo_create_failed: %w", err)
	}

	return nil
}

/*
Update replaces every mutable field of an existing product.

Parameters:
  - context: context.Context
  - product: *Product (target ID plus the full replacement state)

Returns:
  - error: apperr.NotFound when the id does not exist, apperr.Duplicate when
    the new name collides, otherwise execution errors
*/
func (repository *PostgresProductRepository) Update(context context.Context, product *Product) error {
	const query = `
		UPDATE catalog.product
		SET name = $1, slug = $2, category = $3, manufacturer = $4, price = $5,
			discount = $6, issale = $7, saleprice = $8, quantityinstock = $9,
			description = $10, image = $11, updatedat = NOW()
		WHERE id = $12`

	result, err := repository.pool.Exec(context, query,
		product.Name,
		product.Slug,
		product.Category,
		product.Manufacturer,
		product.Price,
		product.Discount,
		product.IsSale,
		product.SalePrice,
		product.QuantityInStock,
		product.Description,
		product.Image,
		product.ID,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Duplicate("Product name already exists")
		}
		return fmt.Errorf("postgres_product_repo_update_failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}

	return nil
}

/*
Rename changes only the product's display name. The slug is kept stable so
existing catalog URLs survive a rename.

Returns:
  - error: apperr.NotFound when the id does not exist, apperr.Duplicate when
    the new name is taken, otherwise execution errors
*/
func (repository *PostgresProductRepository) Rename(context context.Context, id, name string) error {
	const query = `UPDATE catalog.product SET name = $1, updatedat = NOW() WHERE id = $2`

	result, err := repository.pool.Exec(context, query, name, id)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Duplicate("Product name already exists")
		}
		return fmt.Errorf("postgres_product_repo_rename_failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}

	return nil
}

/*
Delete removes a product permanently. Reviews cascade at the schema level.

Returns:
  - error: apperr.NotFound when the id does not exist, otherwise execution errors
*/
func (repository *PostgresProductRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM catalog.product WHERE id = $1`

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_product_repo_delete_failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}

	return nil
}

// collectProducts drains rows into a slice. An empty result yields an empty
// (non-nil) slice so handlers can distinguish "no match" from "no data yet".
func collectProducts(rows pgx.Rows) ([]Product, error) {
	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, fmt.Errorf("postgres_product_repo_scan_failed: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_product_repo_rows_failed: %w", err)
	}

	return products, nil
}
