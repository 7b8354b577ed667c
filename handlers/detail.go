package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/ui"
	"github.com/d-one-motors/site/vehicle"
)

// resolve looks up the vehicle named by the :id route parameter.
func (s *Site) resolve(c *fiber.Ctx) (vehicle.Vehicle, bool) {
	v, ok := s.Catalog.Resolve(c.Params("id"))
	s.Metrics.ObserveResolve(ok)
	return v, ok
}

// HandleVehicle renders the detail page. An unknown id is an ordinary
// outcome and gets the not-found page rather than the error page.
func (s *Site) HandleVehicle(c *fiber.Ctx) error {
	v, ok := s.resolve(c)
	if !ok {
		return renderStatus(c, fiber.StatusNotFound, ui.NotFoundPage())
	}
	return render(c, ui.DetailPage(v, catalog.NewGallery(v), s.Catalog.Related(v)))
}

// HandleGallery returns the gallery partial at the requested image. The
// index is clamped into the gallery.
func (s *Site) HandleGallery(c *fiber.Ctx) error {
	idx, err := ParseIntParam(c, "idx", "image index")
	if err != nil {
		return err
	}

	v, ok := s.resolve(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
	}
	return render(c, ui.GalleryView(v, catalog.GalleryAt(v, idx)))
}
