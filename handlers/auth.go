package handlers

import (
	"log/slog"

	"campuslinkhub/internal/session"
	"campuslinkhub/middleware"
	"campuslinkhub/views"

	"github.com/gofiber/fiber/v2"
)

// Login signs the visitor in under the submitted username. The password is
// required by the form but not checked.
func (h *Handler) Login(c *fiber.Ctx) error {
	form, err := requiredFields(c, "username", "password")
	if err != nil {
		return err
	}

	username := form["username"]
	h.Logger.Info("user logged in", slog.String("username", username))
	return h.transition(c, func(s session.Session) session.Session {
		return session.Login(s, username)
	})
}

// Logout returns the visitor to the initial session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if s := middleware.CurrentSession(c); s.Authenticated {
		h.Logger.Info("user logged out", slog.String("username", s.Username))
	}
	return h.transition(c, session.Logout)
}

// Signup shows the sign-up form.
func (h *Handler) Signup(c *fiber.Ctx) error {
	return h.transition(c, session.RequestSignUp)
}

// CompleteSignup accepts the sign-up form and returns to the login view. No
// account is created.
func (h *Handler) CompleteSignup(c *fiber.Ctx) error {
	names := make([]string, len(views.SignUpFields))
	for i, f := range views.SignUpFields {
		names[i] = f.Name
	}
	if _, err := requiredFields(c, names...); err != nil {
		return err
	}

	return h.transition(c, session.CompleteSignUp)
}
