package trace

import (
	"errors"

	"htmx-greeter/core/logger"
	"htmx-greeter/core/middleware/rayid"
	"htmx-greeter/core/router"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// DefaultSpanName names the span opened for each request.
	DefaultSpanName = "http_request"
	// UnmatchedRoute labels requests answered by the 404 fallback.
	UnmatchedRoute = "unmatched"
)

// Config configures the trace middleware.
type Config struct {
	// Logger receives the span entries. Defaults to a no-op logger.
	Logger *zap.Logger
	// SpanName defaults to DefaultSpanName.
	SpanName string
}

// New returns a middleware that wraps every request in a span.
//
// The span carries the method and RayID from the start and is stored in the
// request locals. Fiber matches routes after global middleware, so the router
// tags the span with matched_route (the route pattern, never the raw path)
// once a route is chosen. When the rest of the chain returns the span gains
// status, or matched_route "unmatched" for the fallback, and is closed. Server errors are recorded on the span;
// 4xx responses are not errors.
func New(cfg Config) fiber.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	name := cfg.SpanName
	if name == "" {
		name = DefaultSpanName
	}

	return func(c *fiber.Ctx) (err error) {
		span := logger.StartSpan(log, name,
			zap.String("method", c.Method()),
			zap.String("ray_id", rayid.FromContext(c)),
		)
		logger.WithSpan(c, span)

		defer func() {
			// Matched routes tag the span themselves; see router.Mount.
			if router.MatchedRoute(c) == "" {
				span.Tag(zap.String(router.LocalsMatchedRoute, UnmatchedRoute))
			}

			status := statusOf(c, err)
			span.SetField(zap.Int("status", status))
			if err != nil && status >= fiber.StatusInternalServerError {
				span.RecordError(err)
			}
			span.End()
		}()

		return c.Next()
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
