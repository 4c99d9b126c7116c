package rayid

import (
	"htmx-greeter/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns a RayID to every request.
// A valid UUID supplied by the client in X-Ray-ID is reused.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// c.Get aliases the request buffer; the id outlives the request in logs.
		rid := utils.CopyString(c.Get(HeaderName))
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}

		c.Locals(logger.LocalsRayID, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromContext returns the RayID assigned to c, or "" outside the middleware.
func FromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(logger.LocalsRayID).(string)
	return rid
}
