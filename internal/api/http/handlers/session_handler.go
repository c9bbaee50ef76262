package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gymkit/dashboard/internal/app"
)

// SessionHandler exposes login and logout for the dashboard UI.
type SessionHandler struct {
	app *app.App
}

// NewSessionHandler constructs handler.
func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{app: a}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. Validation failures and backend rejections
// flow through the error middleware; the backend's message reaches the user
// verbatim.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	page, err := h.app.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"frame": h.app.Frame(),
		"page":  page,
	})
}

// Logout handles POST /auth/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.app.Logout(c.UserContext())
	return c.JSON(fiber.Map{"frame": h.app.Frame()})
}
