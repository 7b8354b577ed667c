// Package catalog answers every question the site asks of the inventory:
// filtered and sorted listings, lookups by id, related vehicles and the
// home page brand groups.
//
// A Catalog is built once from the loaded inventory and never modified, so
// it is safe to share between concurrent requests without locking.
package catalog

import (
	"slices"

	"github.com/d-one-motors/site/vehicle"
)

// AllBrands is the brand filter value that disables brand filtering.
const AllBrands = "All"

type Catalog struct {
	vehicles []vehicle.Vehicle
	brands   []string
}

// New builds a catalog over a private copy of vehicles, preserving their order.
func New(vehicles []vehicle.Vehicle) *Catalog {
	c := &Catalog{
		vehicles: make([]vehicle.Vehicle, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		c.vehicles = append(c.vehicles, v.Clone())
	}
	c.brands = brandEnumeration(c.vehicles)
	return c
}

func brandEnumeration(vehicles []vehicle.Vehicle) []string {
	seen := make(map[string]bool)
	var distinct []string
	for _, v := range vehicles {
		if !seen[v.Brand] {
			seen[v.Brand] = true
			distinct = append(distinct, v.Brand)
		}
	}
	slices.Sort(distinct)
	return append([]string{AllBrands}, distinct...)
}

// Len returns the number of vehicles in the catalog.
func (c *Catalog) Len() int {
	return len(c.vehicles)
}

// All returns every vehicle in catalog order.
func (c *Catalog) All() []vehicle.Vehicle {
	all := make([]vehicle.Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		all = append(all, v.Clone())
	}
	return all
}

// Brands returns "All" followed by every distinct brand, sorted.
func (c *Catalog) Brands() []string {
	return slices.Clone(c.brands)
}

// HasBrand reports whether brand is a valid filter value, "All" included.
func (c *Catalog) HasBrand(brand string) bool {
	_, ok := c.LookupBrand(brand)
	return ok
}

// LookupBrand returns the catalog's own copy of brand, if it is a filter value.
func (c *Catalog) LookupBrand(brand string) (string, bool) {
	if i := slices.Index(c.brands, brand); i >= 0 {
		return c.brands[i], true
	}
	return "", false
}

// Featured returns the flagship vehicles in catalog order.
func (c *Catalog) Featured() []vehicle.Vehicle {
	featured := []vehicle.Vehicle{}
	for _, v := range c.vehicles {
		if v.Featured {
			featured = append(featured, v.Clone())
		}
	}
	return featured
}
