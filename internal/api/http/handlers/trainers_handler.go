package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gymkit/dashboard/internal/api/dto"
	"github.com/gymkit/dashboard/internal/app"
	"github.com/gymkit/dashboard/internal/domain"
)

// TrainersHandler binds the trainer form controller to UI routes.
type TrainersHandler struct {
	app *app.App
}

// NewTrainersHandler constructs handler.
func NewTrainersHandler(a *app.App) *TrainersHandler {
	return &TrainersHandler{app: a}
}

// OpenForm handles POST /trainers/form/open.
func (h *TrainersHandler) OpenForm(c *fiber.Ctx) error {
	var req openFormRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	form := h.app.TrainerForm.Open(h.app.Cache.Snapshot(), req.EntityID)
	return c.JSON(fiber.Map{"form": form})
}

// CloseForm handles POST /trainers/form/close.
func (h *TrainersHandler) CloseForm(c *fiber.Ctx) error {
	h.app.TrainerForm.Close()
	return c.JSON(fiber.Map{"form": h.app.TrainerForm.View()})
}

// SubmitForm handles POST /trainers/form/submit.
func (h *TrainersHandler) SubmitForm(c *fiber.Ctx) error {
	var fields dto.TrainerRequest
	if err := c.BodyParser(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.app.TrainerForm.Submit(c.UserContext(), fields); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"form": h.app.TrainerForm.View(),
		})
	}

	page, _ := h.app.Navigate(c.UserContext(), domain.PageTrainers)
	return c.JSON(fiber.Map{
		"form":  h.app.TrainerForm.View(),
		"frame": h.app.Frame(),
		"page":  page,
	})
}

// Delete handles DELETE /trainers/:id, then re-renders the trainers page.
func (h *TrainersHandler) Delete(c *fiber.Ctx) error {
	if err := h.app.TrainerForm.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	page, _ := h.app.Navigate(c.UserContext(), domain.PageTrainers)
	return c.JSON(fiber.Map{
		"frame": h.app.Frame(),
		"page":  page,
	})
}
