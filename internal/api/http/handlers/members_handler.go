package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gymkit/dashboard/internal/api/dto"
	"github.com/gymkit/dashboard/internal/app"
	"github.com/gymkit/dashboard/internal/domain"
)

// MembersHandler binds the member form controller to UI routes.
type MembersHandler struct {
	app *app.App
}

// NewMembersHandler constructs handler.
func NewMembersHandler(a *app.App) *MembersHandler {
	return &MembersHandler{app: a}
}

type openFormRequest struct {
	EntityID string `json:"entity_id"`
}

// OpenForm handles POST /members/form/open: blank defaults for create, or
// fields populated from the cached entity for edit.
func (h *MembersHandler) OpenForm(c *fiber.Ctx) error {
	var req openFormRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	form := h.app.MemberForm.Open(h.app.Cache.Snapshot(), req.EntityID)
	return c.JSON(fiber.Map{"form": form})
}

// CloseForm handles POST /members/form/close.
func (h *MembersHandler) CloseForm(c *fiber.Ctx) error {
	h.app.MemberForm.Close()
	return c.JSON(fiber.Map{"form": h.app.MemberForm.View()})
}

// SubmitForm handles POST /members/form/submit. Success closes the modal,
// refreshes the cache, and re-renders the members page; failure leaves the
// modal open for correction.
func (h *MembersHandler) SubmitForm(c *fiber.Ctx) error {
	var fields dto.MemberRequest
	if err := c.BodyParser(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.app.MemberForm.Submit(c.UserContext(), fields); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"form": h.app.MemberForm.View(),
		})
	}

	page, _ := h.app.Navigate(c.UserContext(), domain.PageMembers)
	return c.JSON(fiber.Map{
		"form":  h.app.MemberForm.View(),
		"frame": h.app.Frame(),
		"page":  page,
	})
}

// Delete handles DELETE /members/:id, then re-renders the members page.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	if err := h.app.MemberForm.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	page, _ := h.app.Navigate(c.UserContext(), domain.PageMembers)
	return c.JSON(fiber.Map{
		"frame": h.app.Frame(),
		"page":  page,
	})
}
