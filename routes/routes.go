package routes

import (
	"campuslinkhub/handlers"
	healthhandlers "campuslinkhub/internal/handlers"
	"campuslinkhub/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// SetupLiveness registers /health and /ping. Call it before installing the
// session middleware so they skip cookie decoding.
func SetupLiveness(app *fiber.App, health *healthhandlers.Handlers) {
	app.Get("/health", adaptor.HTTPHandlerFunc(health.Health))
	app.Get("/ping", adaptor.HTTPHandlerFunc(health.Ping))
}

// Setup registers the page, form and API routes. The session middleware must
// already be installed on app.
func Setup(app *fiber.App, h *handlers.Handler) {
	// Page
	app.Get("/", h.Index)

	// Session forms
	app.Post("/login", h.Login)
	app.Post("/logout", h.Logout)
	app.Post("/signup", h.Signup)
	app.Post("/signup/complete", h.CompleteSignup)

	// Feed forms, dashboard only
	posts := app.Group("/posts", middleware.DashboardRequired)
	posts.Post("/", h.CreatePost)
	posts.Post("/:id/like", h.LikePost)
	posts.Post("/:id/comments", h.CreateComment)
	posts.Post("/:id/delete", h.DeletePost)

	// JSON API
	api := app.Group("/api")
	api.Get("/session", h.GetMySession)
	api.Get("/posts", h.GetAllPosts)
	api.Get("/posts/:id", h.GetPost)
}
