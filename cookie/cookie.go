// Package cookie keeps a visitor's catalog preferences between visits.
package cookie

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/catalog"
)

const (
	sortCookie = "catalog_sort"
	maxAge     = 30 * 24 * time.Hour
)

// GetSortMode returns the remembered sort mode, or the default when none
// or an unknown one was stored.
func GetSortMode(c *fiber.Ctx) catalog.SortMode {
	return catalog.ParseSortMode(c.Cookies(sortCookie))
}

func SetSortMode(c *fiber.Ctx, mode catalog.SortMode) {
	c.Cookie(&fiber.Cookie{
		Name:     sortCookie,
		Value:    string(mode),
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Lax",
	})
}
