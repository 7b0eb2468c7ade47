// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package product_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantran/mercato/internal/catalog/product"
	"github.com/vantran/mercato/internal/platform/apperr"
)

/*
TestParseFilter_Defaults verifies that a search without parameters yields the
newest-first order and the default pagination window.
*/
func TestParseFilter_Defaults(t *testing.T) {
	filter, err := product.ParseFilter(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, product.SortNewest, filter.SortBy)
	assert.Equal(t, product.DefaultSearchLimit, filter.Limit)
	assert.Equal(t, product.DefaultSearchSkip, filter.Skip)

	// Absent dimensions stay absent rather than defaulting to sentinels.
	assert.Empty(t, filter.Category)
	assert.Empty(t, filter.Manufacturer)
	assert.Nil(t, filter.IsSale)
	assert.Nil(t, filter.InStock)
	assert.Nil(t, filter.MinDiscount)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
}

/*
TestParseFilter_StrictNumerics verifies that malformed numeric parameters are
rejected with a field-level validation error instead of being dropped.
*/
func TestParseFilter_StrictNumerics(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"min price not a number", "minPrice", "cheap"},
		{"max price not a number", "maxPrice", "12,50"},
		{"min discount not a number", "minDiscount", "ten"},
		{"limit not an integer", "limit", "many"},
		{"limit negative", "limit", "-5"},
		{"skip not an integer", "skip", "first"},
		{"is sale not a boolean", "isSale", "yes-please"},
		{"in stock not a boolean", "inStock", "maybe"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := product.ParseFilter(url.Values{test.key: {test.value}})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, test.key, ae.Details[0].Field)
		})
	}
}

/*
TestParseFilter_CollectsAllErrors verifies that every malformed parameter is
reported in one response instead of failing on the first.
*/
func TestParseFilter_CollectsAllErrors(t *testing.T) {
	values := url.Values{
		"minPrice": {"abc"},
		"maxPrice": {"xyz"},
	}

	_, err := product.ParseFilter(values)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}

/*
TestParseFilter_SortByFallback verifies the sort key mapping and its
degradation to newest-first for unknown values.
*/
func TestParseFilter_SortByFallback(t *testing.T) {
	tests := []struct {
		raw  string
		want product.SortOrder
	}{
		{"newest", product.SortNewest},
		{"priceAsc", product.SortPriceAsc},
		{"priceDesc", product.SortPriceDesc},
		{"", product.SortNewest},
		{"bestSellers", product.SortNewest},
		{"PRICEASC", product.SortNewest}, // sort keys are case-sensitive
	}

	for _, test := range tests {
		filter, err := product.ParseFilter(url.Values{"sortBy": {test.raw}})
		require.NoError(t, err)
		assert.Equal(t, test.want, filter.SortBy, "sortBy=%q", test.raw)
	}
}

/*
TestParseFilter_CombinedDimensions verifies that category and isSale populate
the filter together (both predicates must reach the query).
*/
func TestParseFilter_CombinedDimensions(t *testing.T) {
	values := url.Values{
		"category": {"Laptops"},
		"isSale":   {"true"},
		"minPrice": {"99.90"},
		"limit":    {"25"},
		"skip":     {"50"},
	}

	filter, err := product.ParseFilter(values)
	require.NoError(t, err)

	assert.Equal(t, "Laptops", filter.Category)
	require.NotNil(t, filter.IsSale)
	assert.True(t, *filter.IsSale)
	require.NotNil(t, filter.MinPrice)
	assert.InDelta(t, 99.90, *filter.MinPrice, 0.0001)
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 50, filter.Skip)
}
