package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// queryParam reads key from the query string, then from form data, and
// falls back to def when both are blank. The result is a copy, safe to keep
// after the request.
func queryParam(c *fiber.Ctx, key, def string) string {
	if value := strings.TrimSpace(c.Query(key)); value != "" {
		return utils.CopyString(value)
	}
	if value := strings.TrimSpace(c.FormValue(key)); value != "" {
		return utils.CopyString(value)
	}
	return def
}
