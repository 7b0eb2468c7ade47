// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package orders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// # PostgreSQL Repository

// PostgresOrderRepository implements the [OrderRepository] interface using pgx.
//
// The items column is JSONB; pgx's JSON codec handles the []OrderItem
// marshalling in both directions.
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository constructs a PostgreSQL backed order store.
func NewOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

/*
Create persists a new order record.

Parameters:
  - context: context.Context
  - order: *Order (fully assembled by the service layer)

Returns:
  - error: Database execution errors
*/
func (repository *PostgresOrderRepository) Create(context context.Context, order *Order) error {
	const query = `
		INSERT INTO orders."order" (id, userid, items, totalamount, status, paymentmethod, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := repository.pool.Exec(context, query,
		order.ID,
		order.UserID,
		order.Items,
		order.TotalAmount,
		order.Status,
		order.PaymentMethod,
		order.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_order_repo_create_failed: %w", err)
	}

	return nil
}

/*
ListByUser returns a user's orders, newest first.

Parameters:
  - context: context.Context
  - userID: string (UUID)

Returns:
  - []Order: The user's purchase history (empty slice when none)
  - error: Database execution errors
*/
func (repository *PostgresOrderRepository) ListByUser(context context.Context, userID string) ([]Order, error) {
	const query = `
		SELECT id, userid, items, totalamount, status, paymentmethod, createdat
		FROM orders."order"
		WHERE userid = $1
		ORDER BY createdat DESC, id DESC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_order_repo_list_failed: %w", err)
	}
	defer rows.Close()

	userOrders := make([]Order, 0)
	for rows.Next() {
		var order Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Items,
			&order.TotalAmount,
			&order.Status,
			&order.PaymentMethod,
			&order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_order_repo_scan_failed: %w", err)
		}
		userOrders = append(userOrders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_order_repo_rows_failed: %w", err)
	}

	return userOrders, nil
}
