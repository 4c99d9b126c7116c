package rayid_test

import (
	"net/http/httptest"
	"testing"

	"htmx-greeter/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen = rayid.FromContext(c)
		return nil
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	var seen string
	app := setupApp(&seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(rayid.HeaderName)
	_, err = uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, seen)
}

func TestNew_UniquePerRequest(t *testing.T) {
	var seen string
	app := setupApp(&seen)

	ids := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		ids[resp.Header.Get(rayid.HeaderName)] = struct{}{}
	}
	assert.Len(t, ids, 5)
}

func TestNew_ReusesValidIncomingID(t *testing.T) {
	var seen string
	app := setupApp(&seen)
	incoming := uuid.NewString()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, incoming)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, incoming, resp.Header.Get(rayid.HeaderName))
	assert.Equal(t, incoming, seen)
}

func TestNew_ReplacesInvalidIncomingID(t *testing.T) {
	var seen string
	app := setupApp(&seen)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "not-a-uuid")
	resp, err := app.Test(req)
	require.NoError(t, err)

	got := resp.Header.Get(rayid.HeaderName)
	assert.NotEqual(t, "not-a-uuid", got)
	_, err = uuid.Parse(got)
	assert.NoError(t, err)
}

func TestFromContext_Empty(t *testing.T) {
	app := fiber.New()
	var seen = "unset"
	app.Get("/", func(c *fiber.Ctx) error {
		seen = rayid.FromContext(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "", seen)
}
