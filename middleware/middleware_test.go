package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"campuslinkhub/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestApp(codec *session.Codec) *fiber.App {
	app := fiber.New()
	app.Use(Sessions(codec, quiet))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(CurrentSession(c))
	})
	app.Post("/feed", DashboardRequired, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestSessions_NoCookieIsInitial(t *testing.T) {
	app := newTestApp(session.NewCodec("secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"is_authenticated":false,"username":"","view":"login"}`, string(body))
}

func TestSessions_DecodesCookie(t *testing.T) {
	codec := session.NewCodec("secret", time.Hour)
	app := newTestApp(codec)
	token, err := codec.Encode(session.Login(session.New(), "alice"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", session.CookieName+"="+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"is_authenticated":true,"username":"alice","view":"dashboard"}`, string(body))
}

func TestSessions_BadCookieIsCleared(t *testing.T) {
	app := newTestApp(session.NewCodec("secret", time.Hour))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", session.CookieName+"=not-a-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), session.CookieName+"=")
}

func TestDashboardRequired(t *testing.T) {
	codec := session.NewCodec("secret", time.Hour)
	app := newTestApp(codec)

	resp, err := app.Test(httptest.NewRequest("POST", "/feed", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	token, err := codec.Encode(session.Login(session.New(), "bob"))
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/feed", nil)
	req.Header.Set("Cookie", session.CookieName+"="+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(StructuredLogger(NewLogger(&buf, "info")))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	_, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"request processed"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "warn").Info("hidden")
	assert.Empty(t, buf.String())
	NewLogger(&buf, "debug").Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
