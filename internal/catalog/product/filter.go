// Copyright (c) 2026 Mercato. All rights reserved.
// Author: van.tran.dev@gmail.com

package product

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/vantran/mercato/internal/platform/apperr"
	"github.com/vantran/mercato/pkg/pointer"
)

// # Search & Filtering

// SortOrder selects the ordering of search results.
type SortOrder string

const (
	// SortNewest orders by creation time, most recent first. This is the
	// default and the fallback for unrecognized sort keys.
	SortNewest SortOrder = "newest"

	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortOrder = "priceAsc"

	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortOrder = "priceDesc"
)

// Search pagination defaults. Limit is deliberately generous and has no
// enforced ceiling; callers that want everything get everything.
const (
	DefaultSearchLimit = 1000
	DefaultSearchSkip  = 0
)

// Filter holds the typed parameters for a product search query.
//
// Absent dimensions are represented by nil pointers (numerics, booleans) or
// empty strings, so the query builder can skip them entirely instead of
// comparing against sentinel values.
type Filter struct {
	Category     string
	Manufacturer string
	IsSale       *bool
	InStock      *bool
	MinDiscount  *float64
	MinPrice     *float64
	MaxPrice     *float64
	SortBy       SortOrder
	Limit        int
	Skip         int
}

/*
ParseFilter converts raw URL query parameters into a typed [Filter].

Description: Every parameter is optional. Numeric and boolean parameters are
parsed strictly: a malformed value is rejected with a field-level validation
error rather than being silently dropped or coerced. Unrecognized sortBy
values fall back to [SortNewest].

Parameters:
  - values: url.Values (raw query string parameters)

Returns:
  - Filter: Fully typed search criteria with defaults applied
  - error: apperr.ValidationError listing every malformed parameter
*/
func ParseFilter(values url.Values) (Filter, error) {
	filter := Filter{
		Category:     values.Get("category"),
		Manufacturer: values.Get("manufacturer"),
		SortBy:       parseSortOrder(values.Get("sortBy")),
		Limit:        DefaultSearchLimit,
		Skip:         DefaultSearchSkip,
	}

	var fieldErrors []apperr.FieldError

	// Boolean dimensions
	filter.IsSale = parseOptionalBool(values, "isSale", &fieldErrors)
	filter.InStock = parseOptionalBool(values, "inStock", &fieldErrors)

	// Numeric range dimensions
	filter.MinDiscount = parseOptionalFloat(values, "minDiscount", &fieldErrors)
	filter.MinPrice = parseOptionalFloat(values, "minPrice", &fieldErrors)
	filter.MaxPrice = parseOptionalFloat(values, "maxPrice", &fieldErrors)

	// Pagination
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			fieldErrors = append(fieldErrors, apperr.FieldError{Field: "limit", Message: "Must be a non-negative integer"})
		} else {
			filter.Limit = limit
		}
	}
	if raw := values.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			fieldErrors = append(fieldErrors, apperr.FieldError{Field: "skip", Message: "Must be a non-negative integer"})
		} else {
			filter.Skip = skip
		}
	}

	if len(fieldErrors) > 0 {
		return Filter{}, apperr.ValidationError("Invalid search parameters", fieldErrors...)
	}

	return filter, nil
}

// parseSortOrder maps a raw sortBy value onto a [SortOrder].
// Anything outside the known set degrades to newest-first.
func parseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNewest
	}
}

// parseOptionalBool returns nil when the parameter is absent and records a
// field error when it is present but not a valid boolean literal.
func parseOptionalBool(values url.Values, key string, fieldErrors *[]apperr.FieldError) *bool {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		*fieldErrors = append(*fieldErrors, apperr.FieldError{Field: key, Message: "Must be a boolean (true or false)"})
		return nil
	}
	return pointer.To(parsed)
}

// parseOptionalFloat returns nil when the parameter is absent and records a
// field error when it is present but not numeric.
func parseOptionalFloat(values url.Values, key string, fieldErrors *[]apperr.FieldError) *float64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*fieldErrors = append(*fieldErrors, apperr.FieldError{Field: key, Message: fmt.Sprintf("%q is not a number", raw)})
		return nil
	}
	return pointer.To(parsed)
}
