package webassets

import (
	"errors"
	"fmt"
	"net/url"

	"htmx-greeter/core/assets"
	"htmx-greeter/core/router"

	"github.com/gofiber/fiber/v2"
)

const (
	// StylesheetKey and ScriptKey are the keys of the fixed assets in the root store.
	StylesheetKey = "style.css"
	ScriptKey     = "htmx.min.js"

	ContentTypeStylesheet = "text/css"
	ContentTypeScript     = "text/javascript; charset=utf-8"
)

// ErrMissingAsset is returned when a fixed asset is absent from the root store.
var ErrMissingAsset = errors.New("missing fixed asset")

// Handler serves the embedded assets.
type Handler struct {
	stylesheet assets.Asset
	script     assets.Asset
	static     *assets.Store
}

// NewHandler creates a handler. root must contain the stylesheet and script.
func NewHandler(root, static *assets.Store) (*Handler, error) {
	stylesheet, ok := root.Lookup(StylesheetKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, StylesheetKey)
	}
	script, ok := root.Lookup(ScriptKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, ScriptKey)
	}

	return &Handler{
		stylesheet: stylesheet,
		script:     script,
		static:     static,
	}, nil
}

// RegisterRoutes records the asset routes.
func (h *Handler) RegisterRoutes(routes *router.Table) {
	routes.Get("/style.css", h.HandleStylesheet)
	routes.Get("/htmx.min.js", h.HandleScript)
	routes.Get("/static/*", h.HandleStatic)
}

// HandleStylesheet serves the stylesheet.
func (h *Handler) HandleStylesheet(c *fiber.Ctx) error {
	return send(c, h.stylesheet.Data, ContentTypeStylesheet)
}

// HandleScript serves the htmx script.
func (h *Handler) HandleScript(c *fiber.Ctx) error {
	return send(c, h.script.Data, ContentTypeScript)
}

// HandleStatic serves the static file named by the wildcard, or 404. The
// wildcard is percent-decoded but not otherwise cleaned, so "a/../b" and
// "./b" still miss.
func (h *Handler) HandleStatic(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return router.NotFound(c)
	}
	a, ok := h.static.Lookup(name)
	if !ok {
		return router.NotFound(c)
	}
	return send(c, a.Data, a.MIME)
}

func send(c *fiber.Ctx, data []byte, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(data)
}
