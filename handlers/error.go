package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/d-one-motors/site/ui"
)

// CustomErrorHandler renders errors as a site page.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.Printf("[error] %s %s: %v", ctx.Method(), ctx.Path(), err)
		message = "Something went wrong on our side. Please try again shortly."
	}

	return renderStatus(ctx, code, ui.ErrorPage(code, message))
}
