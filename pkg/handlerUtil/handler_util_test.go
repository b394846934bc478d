package handlerUtil

import (
	"DishaAssistant/internal/api/booking"
	"DishaAssistant/internal/api/chat"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func serve(t *testing.T, requestID string, err error) (int, ErrorResponse) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return New(logger).Handle(c, requestID, err, c.Path(), "test")
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHandle_DomainClientError(t *testing.T) {
	status, body := serve(t, "req-1", booking.ErrBookingNotFound)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "BOOKING_NOT_FOUND", body.Code)
	assert.Empty(t, body.TraceID)
}

func TestHandle_DomainServerErrorCarriesTraceID(t *testing.T) {
	status, body := serve(t, "req-1", chat.ErrClearSession)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "CLEAR_FAILED", body.Code)
	assert.Equal(t, "req-1", body.TraceID)
}

func TestHandle_UnexpectedErrorMintsTraceID(t *testing.T) {
	status, body := serve(t, "unknown", errors.New("disk on fire"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "An unexpected error occurred", body.Error)
	_, err := uuid.Parse(body.TraceID)
	assert.NoError(t, err)
}
