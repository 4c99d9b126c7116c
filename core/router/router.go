package router

import (
	"htmx-greeter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalsMatchedRoute is the locals key holding the matched route pattern.
const LocalsMatchedRoute = "matched_route"

// Route is a single (method, pattern) -> handler entry.
type Route struct {
	Method  string
	Pattern string
	Handler fiber.Handler
}

// Table is an ordered list of routes.
type Table struct {
	routes []Route
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{}
}

// Add appends a route.
func (t *Table) Add(method, pattern string, handler fiber.Handler) {
	t.routes = append(t.routes, Route{Method: method, Pattern: pattern, Handler: handler})
}

// Get appends a GET route. Fiber also answers HEAD for it.
func (t *Table) Get(pattern string, handler fiber.Handler) {
	t.Add(fiber.MethodGet, pattern, handler)
}

// Routes returns a copy of the recorded routes.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Mount registers all routes on r, then the 404 fallback.
func (t *Table) Mount(r fiber.Router) {
	for _, rt := range t.routes {
		r.Add(rt.Method, rt.Pattern, tag(rt.Pattern, rt.Handler))
	}
	r.Use(NotFound)
}

// NotFound answers 404 with an empty body.
func NotFound(c *fiber.Ctx) error {
	c.Status(fiber.StatusNotFound)
	return nil
}

// MatchedRoute returns the pattern of the route that handled c, or "" when
// the request fell through to NotFound.
func MatchedRoute(c *fiber.Ctx) string {
	if p, ok := c.Locals(LocalsMatchedRoute).(string); ok {
		return p
	}
	return ""
}

// tag records pattern before h runs. When a request span is open, the
// pattern is attached to it so entries logged from here on carry the route.
func tag(pattern string, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalsMatchedRoute, pattern)
		if span := logger.SpanFromContext(c); span != nil {
			span.Tag(zap.String(LocalsMatchedRoute, pattern))
			span.Logger().Debug("Route matched")
		}
		return h(c)
	}
}
