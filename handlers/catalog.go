package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/cookie"
	"github.com/d-one-motors/site/ui"
)

// listingParams reads the brand and sort mode of a listing request. An
// explicit sort is remembered for later visits; without one the remembered
// mode applies.
func listingParams(c *fiber.Ctx) (string, catalog.SortMode) {
	brand := queryParam(c, "brand", catalog.AllBrands)

	sortParam := queryParam(c, "sort", "")
	if sortParam == "" {
		return brand, cookie.GetSortMode(c)
	}
	mode := catalog.ParseSortMode(sortParam)
	cookie.SetSortMode(c, mode)
	return brand, mode
}

// observeQuery labels the listing with the catalog's brand string so the
// metric never holds request memory.
func (s *Site) observeQuery(brand string, mode catalog.SortMode) {
	label, known := s.Catalog.LookupBrand(brand)
	s.Metrics.ObserveQuery(label, known, string(mode))
}

func (s *Site) HandleCatalog(c *fiber.Ctx) error {
	brand, mode := listingParams(c)
	vehicles := s.Catalog.Query(brand, mode)
	s.observeQuery(brand, mode)

	view := ui.CatalogView{
		Brands:   s.Catalog.Brands(),
		Brand:    brand,
		Sort:     mode,
		Vehicles: vehicles,
		Total:    s.Catalog.Len(),
	}

	c.Vary("HX-Request")
	if isHTMX(c) {
		return render(c, ui.CatalogResults(view))
	}
	return render(c, ui.CatalogPage(view))
}
