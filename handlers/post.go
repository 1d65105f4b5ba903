package handlers

import (
	"log/slog"

	"campuslinkhub/middleware"
	"campuslinkhub/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost publishes the submitted content under the visitor's username.
func (h *Handler) CreatePost(c *fiber.Ctx) error {
	form, err := requiredFields(c, "content")
	if err != nil {
		return err
	}

	author := middleware.CurrentSession(c).Username
	h.Store.AddPost(author, form["content"])
	return backToPage(c)
}

// LikePost adds a like. Unknown posts are ignored.
func (h *Handler) LikePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	if !h.Store.Like(id) {
		h.Logger.Debug("like on missing post", slog.Int64("post_id", id))
	}
	return backToPage(c)
}

// DeletePost removes a post. Unknown posts are ignored.
func (h *Handler) DeletePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	if !h.Store.DeletePost(id) {
		h.Logger.Debug("delete of missing post", slog.Int64("post_id", id))
	}
	return backToPage(c)
}

// GetAllPosts returns the feed as JSON, oldest first.
func (h *Handler) GetAllPosts(c *fiber.Ctx) error {
	return c.JSON(h.Store.Snapshot())
}

// GetPost returns one post as JSON.
func (h *Handler) GetPost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, ok := h.Store.Get(id)
	if !ok {
		return models.NewNotFoundError("Post", id)
	}
	return c.JSON(post)
}
