package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Delete("/api/v1/session", h.Logout)

	// Endpoints that act on an authenticated account.
	account := app.Group("/api/v1", h.RequireAuth())
	account.Post("/change-password", h.ChangePassword)
	account.Get("/profile", h.Profile)
}
