package greeting

import (
	"bytes"

	"htmx-greeter/core/logger"
	"htmx-greeter/core/router"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DefaultName is greeted when no name is given.
const DefaultName = "World"

// Handler handles the greeting page.
type Handler struct {
	renderer *Renderer
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(renderer *Renderer, logger *zap.Logger) *Handler {
	return &Handler{renderer: renderer, logger: logger}
}

// RegisterRoutes records the greeting route.
func (h *Handler) RegisterRoutes(routes *router.Table) {
	routes.Get("/", h.HandleGreeting)
}

// HandleGreeting renders the greeting page.
func (h *Handler) HandleGreeting(c *fiber.Ctx) error {
	name := NameFromQuery(c)

	var buf bytes.Buffer
	if err := h.renderer.Hello(&buf, name); err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to render greeting", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// NameFromQuery returns the last `name` query value, or DefaultName when it
// is missing or empty.
func NameFromQuery(c *fiber.Ctx) string {
	values := c.Context().QueryArgs().PeekMulti("name")
	if len(values) == 0 {
		return DefaultName
	}

	name := string(values[len(values)-1])
	if name == "" {
		return DefaultName
	}
	return name
}
