package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gymkit/dashboard/internal/app"
	"github.com/gymkit/dashboard/internal/domain"
)

// PagesHandler serves the frame and dispatches page navigation.
type PagesHandler struct {
	app *app.App
}

// NewPagesHandler constructs handler.
func NewPagesHandler(a *app.App) *PagesHandler {
	return &PagesHandler{app: a}
}

// Frame handles GET /, returning the chrome for the current state.
func (h *PagesHandler) Frame(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"frame": h.app.Frame()})
}

// Navigate handles GET /pages/:id. Unknown or disallowed targets are a
// no-op: the response carries no page and the active markers stay put.
func (h *PagesHandler) Navigate(c *fiber.Ctx) error {
	page, ok := h.app.Navigate(c.UserContext(), domain.PageID(c.Params("id")))
	if !ok {
		return c.JSON(fiber.Map{"frame": h.app.Frame()})
	}
	return c.JSON(fiber.Map{
		"frame": h.app.Frame(),
		"page":  page,
	})
}
