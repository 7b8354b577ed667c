package catalog

import "github.com/d-one-motors/site/vehicle"

// MaxRelated caps the related vehicles shown under a detail page.
const MaxRelated = 6

// Resolve looks a vehicle up by exact id. The boolean is false when no
// vehicle has that id, which callers render as a not-found page. With
// duplicate ids the first one in catalog order wins.
func (c *Catalog) Resolve(id string) (vehicle.Vehicle, bool) {
	for _, v := range c.vehicles {
		if v.ID == id {
			return v.Clone(), true
		}
	}
	return vehicle.Vehicle{}, false
}

// Related returns up to MaxRelated other vehicles sharing v's brand or
// category, in catalog order.
func (c *Catalog) Related(v vehicle.Vehicle) []vehicle.Vehicle {
	related := []vehicle.Vehicle{}
	for _, w := range c.vehicles {
		if len(related) == MaxRelated {
			break
		}
		if w.ID == v.ID {
			continue
		}
		if w.Brand == v.Brand || w.Category == v.Category {
			related = append(related, w.Clone())
		}
	}
	return related
}
