package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Enquiry form limits per visitor IP.
const (
	enquiryLimitMax = 5
	enquiryLimitExp = 10 * time.Minute
)

// Register mounts every site route on app.
func (s *Site) Register(app fiber.Router) {
	app.Get("/", s.HandleHome)
	app.Get("/catalog", s.HandleCatalog)
	app.Get("/catalog/:id", s.HandleVehicle)
	app.Get("/catalog/:id/gallery/:idx", s.HandleGallery)
	app.Get("/catalog/:id/thumb/:idx", s.HandleThumb)

	api := app.Group("/api")
	api.Post("/enquiry", EnquiryRateLimiter(enquiryLimitMax, enquiryLimitExp), s.HandleEnquiry)
	api.Get("/brands", s.HandleAPIBrands)
	api.Get("/vehicles", s.HandleAPIVehicles)
	api.Get("/vehicles/:id", s.HandleAPIVehicle)

	app.Get("/sitemap.xml", s.HandleSitemap)
	app.Get("/health", s.HandleHealth)
	app.Get("/metrics", s.Metrics.Handler())
}
