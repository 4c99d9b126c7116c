package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp creates the Fiber application with the routing rules the asset
// routes rely on: case-sensitive, no trailing-slash equivalence, and no
// path unescaping.
func NewApp(log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "htmx-greeter",
		DisableStartupMessage: true, // We will log our own startup message
		CaseSensitive:         true,
		StrictRouting:         true,
		Network:               fiber.NetworkTCP4,
		ErrorHandler:          errorHandler(log),
	})
}

// errorHandler logs unexpected responder errors and keeps Fiber's status
// mapping for *fiber.Error values, wrapped or not.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.SendStatus(code)
	}
}
