package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/config"
	"github.com/d-one-motors/site/metrics"
	"github.com/d-one-motors/site/thumb"
)

// HandleThumb serves a gallery image as WebP at the width given by ?w=.
func (s *Site) HandleThumb(c *fiber.Ctx) error {
	idx, err := ParseIntParam(c, "idx", "image index")
	if err != nil {
		return err
	}
	width := c.QueryInt("w", 480)

	v, ok := s.resolve(c)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
	}
	if idx < 0 || idx >= len(v.Gallery) {
		return fiber.NewError(fiber.StatusNotFound, "Image not found")
	}

	data, cached, err := s.Thumbs.Render(v.Gallery[idx], width)
	switch {
	case errors.Is(err, thumb.ErrUnsupportedWidth):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		s.Metrics.ObserveThumb(metrics.OutcomeError)
		log.Printf("[thumb] %s image %d: %v", v.ID, idx, err)
		return fiber.NewError(fiber.StatusBadGateway, "Image unavailable")
	case cached:
		s.Metrics.ObserveThumb(metrics.OutcomeHit)
	default:
		s.Metrics.ObserveThumb(metrics.OutcomeMiss)
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int(config.ThumbMaxAge.Seconds())))
	c.Set(fiber.HeaderExpires, time.Now().Add(config.ThumbMaxAge).UTC().Format(http.TimeFormat))
	return c.Send(data)
}
