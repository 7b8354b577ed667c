package catalog

import (
	"slices"

	"github.com/d-one-motors/site/vehicle"
)

// GroupRule names a home page slider and the brands it collects.
type GroupRule struct {
	Title  string
	Brands []string
}

type Group struct {
	Title    string
	Vehicles []vehicle.Vehicle
}

// DefaultGroups is the home page "Browse by Brand" layout.
var DefaultGroups = []GroupRule{
	{Title: "Mercedes-Benz", Brands: []string{"Mercedes-Benz", "Mercedes-AMG", "Mercedes-Maybach"}},
	{Title: "BMW & MINI", Brands: []string{"BMW", "MINI"}},
	{Title: "Genesis & Hyundai", Brands: []string{"Genesis", "Hyundai"}},
	{Title: "Porsche & Lamborghini", Brands: []string{"Porsche", "Lamborghini"}},
	{Title: "Range Rover & Lexus", Brands: []string{"Range Rover", "Lexus"}},
}

// Groups partitions the catalog by rules. A vehicle joins the first rule
// listing its brand; vehicles no rule lists are left out. Every rule yields
// a group, empty or not, in rule order.
func (c *Catalog) Groups(rules []GroupRule) []Group {
	groups := make([]Group, len(rules))
	for i, r := range rules {
		groups[i] = Group{Title: r.Title, Vehicles: []vehicle.Vehicle{}}
	}

	for _, v := range c.vehicles {
		for i, r := range rules {
			if slices.Contains(r.Brands, v.Brand) {
				groups[i].Vehicles = append(groups[i].Vehicles, v.Clone())
				break
			}
		}
	}

	return groups
}
