package handlers

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"campuslinkhub/internal/feed"
	"campuslinkhub/internal/session"
	"campuslinkhub/middleware"
	"campuslinkhub/models"
	"campuslinkhub/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Handler serves the page, its form posts and the JSON API.
type Handler struct {
	Store      *feed.Store
	Codec      *session.Codec
	SessionTTL time.Duration
	Views      *views.Renderer
	AppName    string
	Logger     *slog.Logger
}

// Index renders the view selected by the visitor's session.
func (h *Handler) Index(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	page := views.Page{AppName: h.AppName, Session: s}
	if s.OnDashboard() {
		page.Posts = h.Store.Snapshot()
	}

	html, err := h.Views.Render(page)
	if err != nil {
		return models.NewInternalError(err)
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

// transition applies fn to the current session, stores the result and sends
// the browser back to the page.
func (h *Handler) transition(c *fiber.Ctx, fn func(session.Session) session.Session) error {
	next := fn(middleware.CurrentSession(c))
	if err := middleware.SaveSession(c, h.Codec, h.SessionTTL, next); err != nil {
		return models.NewInternalError(err)
	}
	return backToPage(c)
}

func backToPage(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}

// requiredFields returns the trimmed values of the named form fields, or a
// validation error naming the first empty one. Values are copied out of the
// request buffer, which fasthttp reuses once the handler returns.
func requiredFields(c *fiber.Ctx, names ...string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		v := strings.TrimSpace(c.FormValue(name))
		if v == "" {
			return nil, models.NewRequiredFieldError(name)
		}
		values[name] = utils.CopyString(v)
	}
	return values, nil
}

func postID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, models.NewValidationError("Invalid post ID")
	}
	return id, nil
}

// ErrorHandler renders errors returned by handlers as the standard JSON body.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := models.StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("handler error", slog.String("path", c.Path()), slog.String("error", err.Error()))
		}
		return models.RespondWithError(c, status, err)
	}
}
