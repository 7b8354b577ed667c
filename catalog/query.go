package catalog

import (
	"cmp"
	"slices"

	"github.com/d-one-motors/site/vehicle"
)

type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNewest    SortMode = "newest"
)

// SortModes lists the sort modes in the order the catalog page offers them.
var SortModes = []SortMode{SortDefault, SortPriceAsc, SortPriceDesc, SortNewest}

// ParseSortMode maps a query string value to a sort mode. Anything
// unrecognised falls back to SortDefault.
func ParseSortMode(s string) SortMode {
	for _, m := range SortModes {
		if string(m) == s {
			return m
		}
	}
	return SortDefault
}

func (m SortMode) Label() string {
	switch m {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortNewest:
		return "Newest First"
	}
	return "Default"
}

// Query returns the vehicles of the given brand ("All" or "" for every
// brand) ordered by mode. The result is always a fresh slice of copies; a
// brand with no vehicles yields an empty one. Ties keep catalog order.
func (c *Catalog) Query(brand string, mode SortMode) []vehicle.Vehicle {
	result := make([]vehicle.Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		if brand == "" || brand == AllBrands || v.Brand == brand {
			result = append(result, v.Clone())
		}
	}

	switch mode {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b vehicle.Vehicle) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b vehicle.Vehicle) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNewest:
		slices.SortStableFunc(result, func(a, b vehicle.Vehicle) int {
			return cmp.Compare(b.Year, a.Year)
		})
	}

	return result
}
