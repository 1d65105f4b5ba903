package middleware

import (
	"errors"
	"log/slog"
	"time"

	"campuslinkhub/internal/session"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// Sessions decodes the session cookie into the request locals. A missing or
// unreadable cookie yields the initial session; the latter is logged at debug
// level and the stale cookie is cleared.
func Sessions(codec *session.Codec, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := codec.DecodeOrNew(c.Cookies(session.CookieName))
		if err != nil {
			if errors.Is(err, session.ErrInvalidToken) {
				logger.Debug("discarding session cookie", slog.String("error", err.Error()))
			}
			c.ClearCookie(session.CookieName)
		}
		c.Locals(sessionKey, s)
		return c.Next()
	}
}

// CurrentSession returns the session decoded by Sessions, or the initial
// session when the middleware did not run.
func CurrentSession(c *fiber.Ctx) session.Session {
	if s, ok := c.Locals(sessionKey).(session.Session); ok {
		return s
	}
	return session.New()
}

// SaveSession encodes s into the session cookie and makes it the current
// session for the rest of the request.
func SaveSession(c *fiber.Ctx, codec *session.Codec, ttl time.Duration, s session.Session) error {
	token, err := codec.Encode(s)
	if err != nil {
		return err
	}
	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.Expires = time.Now().Add(ttl)
	}
	c.Cookie(cookie)
	c.Locals(sessionKey, s)
	return nil
}

// DashboardRequired sends visitors who are not on the dashboard back to the
// front page instead of running feed operations for them.
func DashboardRequired(c *fiber.Ctx) error {
	if !CurrentSession(c).OnDashboard() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}
