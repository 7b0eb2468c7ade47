// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/vantran/mercato/internal/platform/constants"
)

// Months windows accepted by the trend endpoints. Values outside the range
// are clamped rather than rejected; the dashboard should never 400 on a
// sloppy query string.
const (
	minTrendMonths = 1
	maxTrendMonths = 24
)

// # Service Layer

// Service assembles dashboard statistics, serving them from the cache when a
// fresh snapshot exists.
type Service struct {
	statsRepository StatsRepository
	cache           StatsCache
	logger          *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(statsRepo StatsRepository, cache StatsCache, logger *slog.Logger) *Service {
	return &Service{
		statsRepository: statsRepo,
		cache:           cache,
		logger:          logger,
	}
}

// # Statistics

/*
GetStats returns the store-wide statistics snapshot.

Description: The cache is consulted first; a hit short-circuits everything.
On a miss the aggregates are computed from the database and the snapshot is
written back with the standard TTL. Cache failures are logged and degrade to
a direct database read; the dashboard must keep working when Redis is down.

Returns:
  - *Stats: The snapshot (possibly up to the cache TTL stale)
  - error: Database failures only
*/
func (service *Service) GetStats(context context.Context) (*Stats, error) {

	// Cache lookup (best effort)
	cached, err := service.cache.Get(context)
	if err != nil {
		service.logger.Warn("dashboard_cache_read_failed", slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := service.computeStats(context)
	if err != nil {
		return nil, err
	}

	// Cache write-back (best effort)
	if err := service.cache.Set(context, stats, constants.DashboardCacheTTL); err != nil {
		service.logger.Warn("dashboard_cache_write_failed", slog.String("error", err.Error()))
	}

	return stats, nil
}

/*
NewCustomers returns monthly registration counts.

Parameters:
  - context: context.Context
  - months: int (window size; clamped to [1, 24], 0 means the default)

Returns:
  - []MonthlyCount: Oldest-first monthly buckets
  - error: Database failures
*/
func (service *Service) NewCustomers(context context.Context, months int) ([]MonthlyCount, error) {
	return service.statsRepository.MonthlyNewUsers(context, clampMonths(months))
}

/*
Revenue returns monthly revenue from non-cancelled orders.

Parameters:
  - context: context.Context
  - months: int (window size; clamped to [1, 24], 0 means the default)

Returns:
  - []MonthlyAmount: Oldest-first monthly buckets
  - error: Database failures
*/
func (service *Service) Revenue(context context.Context, months int) ([]MonthlyAmount, error) {
	return service.statsRepository.MonthlyRevenue(context, clampMonths(months))
}

// computeStats runs every aggregate and assembles a fresh snapshot.
func (service *Service) computeStats(context context.Context) (*Stats, error) {
	customers, err := service.statsRepository.CountCustomers(context)
	if err != nil {
		return nil, err
	}

	products, err := service.statsRepository.CountProducts(context)
	if err != nil {
		return nil, err
	}

	deals, err := service.statsRepository.CountActiveDeals(context)
	if err != nil {
		return nil, err
	}

	revenue, err := service.statsRepository.TotalRevenue(context)
	if err != nil {
		return nil, err
	}

	customersTrend, err := service.statsRepository.MonthlyNewUsers(context, constants.DefaultTrendMonths)
	if err != nil {
		return nil, err
	}

	revenueTrend, err := service.statsRepository.MonthlyRevenue(context, constants.DefaultTrendMonths)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalCustomers:    customers,
		TotalProducts:     products,
		TotalRevenue:      revenue,
		ActiveDeals:       deals,
		ConversionRate:    0,
		NewCustomersTrend: customersTrend,
		RevenueTrend:      revenueTrend,
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

// clampMonths normalizes a requested window size.
func clampMonths(months int) int {
	if months < minTrendMonths {
		return constants.DefaultTrendMonths
	}
	if months > maxTrendMonths {
		return maxTrendMonths
	}
	return months
}
