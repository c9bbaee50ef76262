package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gymkit/dashboard/internal/api/http/handlers"
	"github.com/gymkit/dashboard/internal/app"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	App      *app.App
	Health   *handlers.HealthHandler
	Session  *handlers.SessionHandler
	Pages    *handlers.PagesHandler
	Members  *handlers.MembersHandler
	Trainers *handlers.TrainersHandler
}

// RegisterRoutes wires the UI routes.
func RegisterRoutes(fiberApp *fiber.App, cfg RouteConfig) {
	fiberApp.Get("/health/live", cfg.Health.Live)
	fiberApp.Get("/health/ready", cfg.Health.Ready)

	fiberApp.Get("/", cfg.Pages.Frame)
	fiberApp.Post("/auth/login", cfg.Session.Login)
	fiberApp.Post("/auth/logout", cfg.Session.Logout)

	protected := fiberApp.Group("", RequireSession(cfg.App))
	protected.Get("/pages/:id", cfg.Pages.Navigate)

	protected.Post("/members/form/open", cfg.Members.OpenForm)
	protected.Post("/members/form/close", cfg.Members.CloseForm)
	protected.Post("/members/form/submit", cfg.Members.SubmitForm)
	protected.Delete("/members/:id", cfg.Members.Delete)

	protected.Post("/trainers/form/open", cfg.Trainers.OpenForm)
	protected.Post("/trainers/form/close", cfg.Trainers.CloseForm)
	protected.Post("/trainers/form/submit", cfg.Trainers.SubmitForm)
	protected.Delete("/trainers/:id", cfg.Trainers.Delete)
}
