package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/ui"
)

func (s *Site) HandleHome(c *fiber.Ctx) error {
	return render(c, ui.HomePage(ui.HomeData{
		Brands:   s.Catalog.Brands(),
		Featured: s.Catalog.Featured(),
		Groups:   s.Catalog.Groups(catalog.DefaultGroups),
		Total:    s.Catalog.Len(),
	}))
}
