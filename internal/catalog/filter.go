// Package catalog implements the storefront's in-memory car filtering and
// pagination.  The catalog is fetched once and filtered as a conjunction of
// independent per-field predicates; an absent filter value makes its
// predicate true.  This is O(n) per evaluation and intentionally so; the
// expected catalog size is small and this is not a query engine.
package catalog

import (
	"strings"

	"github.com/luxedrive/rental-api/internal/model"
)

// DefaultPriceMax is the upper bound of the default price range.  A filter
// at exactly the default range matches every car.
const DefaultPriceMax = 5000

// Filter is the record of optional catalog predicates.  Prices are daily
// rates in whole currency units.
type Filter struct {
	Search       string  // case-insensitive substring match on title only
	PriceMin     float64 // inclusive lower bound on the daily rate
	PriceMax     float64 // inclusive upper bound on the daily rate
	Category     string  // exact category tag
	Brand        string  // case-insensitive brand equality
	FuelType     string  // case-insensitive fuel type equality
	Transmission string  // case-insensitive transmission equality
}

// DefaultFilter returns the filter equivalent to "no filtering".
func DefaultFilter() Filter {
	return Filter{PriceMin: 0, PriceMax: DefaultPriceMax}
}

// Matches evaluates the conjunction for a single car.
func (f Filter) Matches(c *model.Car) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Search)) {
		return false
	}
	daily := float64(c.Pricing.DailyCents) / 100.0
	if daily < f.PriceMin || daily > f.PriceMax {
		return false
	}
	if f.Category != "" && !c.HasCategory(f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(c.Brand, f.Brand) {
		return false
	}
	if f.FuelType != "" && !strings.EqualFold(c.FuelType, f.FuelType) {
		return false
	}
	if f.Transmission != "" && !strings.EqualFold(c.Transmission, f.Transmission) {
		return false
	}
	return true
}

// Apply filters the list, preserving the original relative order.
func Apply(cars []model.Car, f Filter) []model.Car {
	out := make([]model.Car, 0, len(cars))
	for i := range cars {
		if f.Matches(&cars[i]) {
			out = append(out, cars[i])
		}
	}
	return out
}

// Page is one page of a filtered result set.
type Page struct {
	Items      []model.Car `json:"items"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalItems int         `json:"total_items"`
	TotalPages int         `json:"total_pages"`
}

// Paginate slices the filtered list into a fixed-size page.  Pages are
// 1-based; out-of-range pages yield an empty item list with correct totals.
func Paginate(cars []model.Car, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}
	total := len(cars)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{
		Items:      cars[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
