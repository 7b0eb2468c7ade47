// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package dashboard_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/dashboard"
)

// fakeStatsRepository returns canned aggregates and counts its calls.
type fakeStatsRepository struct {
	calls int
}

func (f *fakeStatsRepository) CountCustomers(_ context.Context) (int, error) {
	f.calls++
	return 42, nil
}

func (f *fakeStatsRepository) CountProducts(_ context.Context) (int, error) {
	f.calls++
	return 7, nil
}

func (f *fakeStatsRepository) CountActiveDeals(_ context.Context) (int, error) {
	f.calls++
	return 3, nil
}

func (f *fakeStatsRepository) TotalRevenue(_ context.Context) (float64, error) {
	f.calls++
	return 1234.56, nil
}

func (f *fakeStatsRepository) MonthlyNewUsers(_ context.Context, months int) ([]dashboard.MonthlyCount, error) {
	f.calls++
	return []dashboard.MonthlyCount{{Month: "2026-08", Count: months}}, nil
}

func (f *fakeStatsRepository) MonthlyRevenue(_ context.Context, months int) ([]dashboard.MonthlyAmount, error) {
	f.calls++
	return []dashboard.MonthlyAmount{{Month: "2026-08", Amount: float64(months)}}, nil
}

// fakeStatsCache is an in-memory StatsCache; failing toggles error returns.
type fakeStatsCache struct {
	snapshot *dashboard.Stats
	failing  bool
	sets     int
}

func (f *fakeStatsCache) Get(_ context.Context) (*dashboard.Stats, error) {
	if f.failing {
		return nil, errors.New("redis down")
	}
	return f.snapshot, nil
}

func (f *fakeStatsCache) Set(_ context.Context, stats *dashboard.Stats, _ time.Duration) error {
	if f.failing {
		return errors.New("redis down")
	}
	f.snapshot = stats
	f.sets++
	return nil
}

/*
TestService_GetStats_CacheMissAndWriteBack verifies that a miss computes the
snapshot from the database and caches it for the next call.
*/
func TestService_GetStats_CacheMissAndWriteBack(t *testing.T) {
	repo := &fakeStatsRepository{}
	cache := &fakeStatsCache{}
	service := dashboard.NewService(repo, cache, slog.Default())

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalCustomers)
	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, 3, stats.ActiveDeals)
	assert.InDelta(t, 1234.56, stats.TotalRevenue, 0.0001)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache without touching the repository.
	callsAfterFirst := repo.calls
	again, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats.TotalCustomers, again.TotalCustomers)
	assert.Equal(t, callsAfterFirst, repo.calls)
}

/*
TestService_GetStats_CacheDownDegrades verifies that a broken cache never
breaks the endpoint; stats still come from the database.
*/
func TestService_GetStats_CacheDownDegrades(t *testing.T) {
	repo := &fakeStatsRepository{}
	cache := &fakeStatsCache{failing: true}
	service := dashboard.NewService(repo, cache, slog.Default())

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalCustomers)
}

/*
TestService_TrendWindowClamping verifies the months window normalization on
both trend endpoints.
*/
func TestService_TrendWindowClamping(t *testing.T) {
	repo := &fakeStatsRepository{}
	service := dashboard.NewService(repo, &fakeStatsCache{}, slog.Default())

	tests := []struct {
		requested int
		want      int
	}{
		{0, 6},    // default window
		{-3, 6},   // negative falls back to default
		{12, 12},  // in range passes through
		{240, 24}, // capped
	}

	for _, test := range tests {
		series, err := service.NewCustomers(context.Background(), test.requested)
		require.NoError(t, err)
		require.Len(t, series, 1)
		// The fake echoes the window size back as the count.
		assert.Equal(t, test.want, series[0].Count, "months=%d", test.requested)

		amounts, err := service.Revenue(context.Background(), test.requested)
		require.NoError(t, err)
		require.Len(t, amounts, 1)
		assert.InDelta(t, float64(test.want), amounts[0].Amount, 0.0001)
	}
}
