package server_test

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"htmx-greeter/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewApp_RoutingRules(t *testing.T) {
	app := server.NewApp(zap.NewNop())
	app.Get("/style.css", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/style.css", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	for _, target := range []string{"/style.css/", "/STYLE.CSS"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode, target)
	}
}

func TestNewApp_ErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := server.NewApp(zap.New(core))
	app.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot) })
	app.Get("/wrapped", func(c *fiber.Ctx) error { return fmt.Errorf("lookup: %w", fiber.ErrNotFound) })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/wrapped", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
}
