// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantran/mercato/internal/platform/sec"
)

// # PostgreSQL Repository

// PostgresStatsRepository implements the [StatsRepository] aggregations.
//
// All queries are read-only aggregates; none of them lock rows.
type PostgresStatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository constructs a PostgreSQL backed statistics store.
func NewStatsRepository(pool *pgxpool.Pool) *PostgresStatsRepository {
	return &PostgresStatsRepository{pool: pool}
}

// CountCustomers returns the number of customer-role accounts.
func (repository *PostgresStatsRepository) CountCustomers(context context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users.account WHERE role = $1`

	var count int
	if err := repository.pool.QueryRow(context, query, string(sec.RoleCustomer)).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_stats_repo_count_customers_failed: %w", err)
	}
	return count, nil
}

// CountProducts returns the catalog size.
func (repository *PostgresStatsRepository) CountProducts(context context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM catalog.product`

	var count int
	if err := repository.pool.QueryRow(context, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_stats_repo_count_products_failed: %w", err)
	}
	return count, nil
}

// CountActiveDeals returns the number of products currently on sale.
func (repository *PostgresStatsRepository) CountActiveDeals(context context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM catalog.product WHERE issale`

	var count int
	if err := repository.pool.QueryRow(context, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres_stats_repo_count_deals_failed: %w", err)
	}
	return count, nil
}

// TotalRevenue sums the total amount of all non-cancelled orders.
func (repository *PostgresStatsRepository) TotalRevenue(context context.Context) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(totalamount), 0)
		FROM orders."order"
		WHERE status <> 'cancelled'`

	var total float64
	if err := repository.pool.QueryRow(context, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres_stats_repo_total_revenue_failed: %w", err)
	}
	return total, nil
}

/*
MonthlyNewUsers returns registration counts bucketed by calendar month.

Description: The window covers the current month and the N-1 months before
it. Buckets are keyed "YYYY-MM" and ordered oldest first; empty months do
not appear.

Parameters:
  - context: context.Context
  - months: int (window size, at least 1)

Returns:
  - []MonthlyCount: Per-month registration counts
  - error: Database execution errors
*/
func (repository *PostgresStatsRepository) MonthlyNewUsers(context context.Context, months int) ([]MonthlyCount, error) {
	const query = `
		SELECT to_char(date_trunc('month', createdat), 'YYYY-MM') AS month, COUNT(*)
		FROM users.account
		WHERE createdat >= date_trunc('month', NOW()) - make_interval(months => $1 - 1)
		GROUP BY 1
		ORDER BY 1`

	rows, err := repository.pool.Query(context, query, months)
	if err != nil {
		return nil, fmt.Errorf("postgres_stats_repo_monthly_users_failed: %w", err)
	}
	defer rows.Close()

	series := make([]MonthlyCount, 0, months)
	for rows.Next() {
		var bucket MonthlyCount
		if err := rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return nil, fmt.Errorf("postgres_stats_repo_monthly_users_scan_failed: %w", err)
		}
		series = append(series, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_stats_repo_monthly_users_rows_failed: %w", err)
	}

	return series, nil
}

/*
MonthlyRevenue returns revenue from non-cancelled orders bucketed by month.

Parameters:
  - context: context.Context
  - months: int (window size, at least 1)

Returns:
  - []MonthlyAmount: Per-month revenue, oldest first
  - error: Database execution errors
*/
func (repository *PostgresStatsRepository) MonthlyRevenue(context context.Context, months int) ([]MonthlyAmount, error) {
	const query = `
		SELECT to_char(date_trunc('month', createdat), 'YYYY-MM') AS month, SUM(totalamount)
		FROM orders."order"
		WHERE status <> 'cancelled'
		  AND createdat >= date_trunc('month', NOW()) - make_interval(months => $1 - 1)
		GROUP BY 1
		ORDER BY 1`

	rows, err := repository.pool.Query(context, query, months)
	if err != nil {
		return nil, fmt.Errorf("postgres_stats_repo_monthly_revenue_failed: %w", err)
	}
	defer rows.Close()

	series := make([]MonthlyAmount, 0, months)
	for rows.Next() {
		var bucket MonthlyAmount
		if err := rows.Scan(&bucket.Month, &bucket.Amount); err != nil {
			return nil, fmt.Errorf("postgres_stats_repo_monthly_revenue_scan_failed: %w", err)
		}
		series = append(series, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_stats_repo_monthly_revenue_rows_failed: %w", err)
	}

	return series, nil
}
