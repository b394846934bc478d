package context

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
	assert.Equal(t, "r-1", GetRequestID(WithRequestID(context.Background(), "r-1")))
}

func TestSessionID(t *testing.T) {
	assert.Empty(t, GetSessionID(context.Background()))

	ctx := WithSessionID(WithRequestID(context.Background(), "r-1"), "s-1")
	assert.Equal(t, "s-1", GetSessionID(ctx))
	assert.Equal(t, "r-1", GetRequestID(ctx))
}

func TestFromFiberCtx(t *testing.T) {
	app := fiber.New()
	app.Get("/locals", func(c *fiber.Ctx) error {
		c.Locals("X-Request-ID", "from-locals")
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})
	app.Get("/header", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})

	cases := []struct {
		path   string
		header string
		want   string
	}{
		{"/locals", "", "from-locals"},
		{"/header", "from-header", "from-header"},
		{"/header", "", "unknown"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.path, nil)
		if tc.header != "" {
			req.Header.Set("X-Request-ID", tc.header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, tc.want, string(body))
	}
}
