package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/vehicle"
)

func (s *Site) HandleAPIBrands(c *fiber.Ctx) error {
	return c.JSON(s.Catalog.Brands())
}

// HandleAPIVehicles is the JSON form of the catalog listing.
func (s *Site) HandleAPIVehicles(c *fiber.Ctx) error {
	brand, mode := listingParams(c)
	vehicles := s.Catalog.Query(brand, mode)
	s.observeQuery(brand, mode)

	return c.JSON(fiber.Map{
		"brand":    brand,
		"sort":     mode,
		"total":    s.Catalog.Len(),
		"vehicles": vehicles,
	})
}

type vehicleResponse struct {
	Vehicle vehicle.Vehicle `json:"vehicle"`
	Related []string        `json:"related"`
}

func (s *Site) HandleAPIVehicle(c *fiber.Ctx) error {
	v, ok := s.resolve(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "vehicle not found"})
	}

	resp := vehicleResponse{Vehicle: v, Related: []string{}}
	for _, r := range s.Catalog.Related(v) {
		resp.Related = append(resp.Related, r.ID)
	}
	return c.JSON(resp)
}
