package trace_test

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"htmx-greeter/core/middleware/rayid"
	"htmx-greeter/core/middleware/trace"
	"htmx-greeter/core/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	app.Use(rayid.New())
	app.Use(trace.New(trace.Config{Logger: zap.New(core)}))
	app.Use(recover.New())

	table := router.NewTable()
	table.Get("/", func(c *fiber.Ctx) error { return c.SendString("hi") })
	table.Get("/static/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	table.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })
	table.Get("/gone", func(c *fiber.Ctx) error { return fiber.ErrGone })
	table.Get("/wrapped", func(c *fiber.Ctx) error { return fmt.Errorf("lookup: %w", fiber.ErrNotFound) })
	table.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })
	table.Mount(app)

	return app, logs
}

func spanEnd(t *testing.T, logs *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	entries := logs.FilterMessage(trace.DefaultSpanName).All()
	require.Len(t, entries, 1)
	return entries[0]
}

func TestTrace_MatchedRoute(t *testing.T) {
	app, logs := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/static/img/a.png?x=1", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	entry := spanEnd(t, logs)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	ctx := entry.ContextMap()
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/static/*", ctx["matched_route"])
	assert.EqualValues(t, 404, ctx["status"])
	assert.Equal(t, resp.Header.Get(rayid.HeaderName), ctx["ray_id"])
	assert.Contains(t, ctx, "duration")

	started := logs.FilterMessage(trace.DefaultSpanName + " started").All()
	require.Len(t, started, 1)
	assert.Equal(t, zapcore.DebugLevel, started[0].Level)

	matched := logs.FilterMessage("Route matched").All()
	require.Len(t, matched, 1)
	assert.Equal(t, zapcore.DebugLevel, matched[0].Level)
	assert.Equal(t, "/static/*", matched[0].ContextMap()["matched_route"])
	assert.Equal(t, ctx["ray_id"], matched[0].ContextMap()["ray_id"])
}

func TestTrace_Unmatched(t *testing.T) {
	app, logs := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	entry := spanEnd(t, logs)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "POST", entry.ContextMap()["method"])
	assert.Equal(t, trace.UnmatchedRoute, entry.ContextMap()["matched_route"])
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Zero(t, logs.FilterMessage("Route matched").Len())
}

func TestTrace_OK(t *testing.T) {
	app, logs := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/?name=x", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	entry := spanEnd(t, logs)
	assert.Equal(t, "/", entry.ContextMap()["matched_route"])
	assert.EqualValues(t, 200, entry.ContextMap()["status"])
}

func TestTrace_Errors(t *testing.T) {
	tests := []struct {
		target    string
		wantCode  int
		wantLevel zapcore.Level
	}{
		{"/boom", 500, zapcore.ErrorLevel},
		{"/panic", 500, zapcore.ErrorLevel},
		{"/gone", 410, zapcore.InfoLevel},
		{"/wrapped", 404, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			app, logs := setupApp(t)

			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			entry := spanEnd(t, logs)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.target, entry.ContextMap()["matched_route"])
			assert.EqualValues(t, tt.wantCode, entry.ContextMap()["status"])
		})
	}
}

func TestTrace_NilLogger(t *testing.T) {
	app := fiber.New()
	app.Use(trace.New(trace.Config{}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
