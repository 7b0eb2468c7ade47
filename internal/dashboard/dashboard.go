// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

/*
Package dashboard aggregates store-wide statistics for the admin console.

It composes counts and revenue sums from the relational store and serves them
through a short-lived Redis snapshot, so a dashboard polling every few seconds
never hammers the primary database.

# Freshness

The snapshot TTL bounds staleness (see constants.DashboardCacheTTL). Numbers
on the dashboard may lag reality by up to that window, which is acceptable
for an overview screen.
*/
package dashboard

import (
	"context"
	"time"
)

// # View Models

// Stats is the store-wide snapshot rendered by the admin overview.
type Stats struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalProducts  int     `json:"totalProducts"`
	TotalRevenue   float64 `json:"totalRevenue"`
	ActiveDeals    int     `json:"activeDeals"` // products currently on sale

	// ConversionRate is reported as zero; funnel tracking does not exist yet.
	ConversionRate float64 `json:"conversionRate"`

	// Chart series for the overview widgets.
	NewCustomersTrend []MonthlyCount  `json:"newCustomersTrend"`
	RevenueTrend      []MonthlyAmount `json:"revenueTrend"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// MonthlyCount is one month's bucket of a counting series.
type MonthlyCount struct {
	Month string `json:"month"` // "2026-08"
	Count int    `json:"count"`
}

// MonthlyAmount is one month's bucket of a monetary series.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// # Repository Contracts

// StatsRepository defines the aggregation queries behind the dashboard.
type StatsRepository interface {
	// CountCustomers returns the number of accounts with the customer role.
	CountCustomers(context context.Context) (int, error)

	// CountProducts returns the catalog size.
	CountProducts(context context.Context) (int, error)

	// CountActiveDeals returns the number of products currently on sale.
	CountActiveDeals(context context.Context) (int, error)

	// TotalRevenue sums the total amount of all non-cancelled orders.
	TotalRevenue(context context.Context) (float64, error)

	/*
		MonthlyNewUsers returns per-month registration counts for the last
		N calendar months, oldest first. Months without registrations are
		absent from the series.
	*/
	MonthlyNewUsers(context context.Context, months int) ([]MonthlyCount, error)

	/*
		MonthlyRevenue returns per-month revenue from non-cancelled orders
		for the last N calendar months, oldest first.
	*/
	MonthlyRevenue(context context.Context, months int) ([]MonthlyAmount, error)
}

// StatsCache defines the snapshot cache contract.
type StatsCache interface {
	// Get returns the cached snapshot, or (nil, nil) on a cache miss.
	Get(context context.Context) (*Stats, error)

	// Set stores a snapshot with the given lifetime.
	Set(context context.Context, stats *Stats, timeToLive time.Duration) error
}
