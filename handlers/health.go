package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/cache"
)

// ThumbStats is implemented by a renderer that can report its cache.
type ThumbStats interface {
	Stats() cache.Stats
}

// HandleHealth reports the catalog size and thumbnail cache activity.
func (s *Site) HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status":   "ok",
		"vehicles": s.Catalog.Len(),
		"brands":   len(s.Catalog.Brands()) - 1,
		"source":   s.Source,
	}

	if ts, ok := s.Thumbs.(ThumbStats); ok {
		health["thumb_cache"] = ts.Stats()
	}

	// An empty inventory serves nothing useful.
	if s.Catalog.Len() == 0 {
		health["status"] = "unhealthy"
		c.Status(fiber.StatusServiceUnavailable)
	}

	return c.JSON(health)
}
