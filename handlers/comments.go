package handlers

import (
	"log/slog"

	"campuslinkhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateComment appends the submitted comment to a post under the visitor's
// username. Unknown posts are ignored.
func (h *Handler) CreateComment(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	form, err := requiredFields(c, "comment")
	if err != nil {
		return err
	}

	author := middleware.CurrentSession(c).Username
	if !h.Store.AddComment(id, author, form["comment"]) {
		h.Logger.Debug("comment on missing post", slog.Int64("post_id", id))
	}
	return backToPage(c)
}
