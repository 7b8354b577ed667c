package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

func renderStatus(c *fiber.Ctx, status int, component g.Node) error {
	c.Status(status)
	return render(c, component)
}

// isHTMX reports whether the request came from an htmx swap.
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
