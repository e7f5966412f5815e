package handlers

import (
	"errors"

	applog "luxelane/internal/log"
	"luxelane/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Contact *services.ContactService
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// POST /api/contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in contactPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}
	contact, err := h.Contact.Submit(in.Name, in.Email, in.Phone, in.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrBadEmail),
			errors.Is(err, services.ErrBadPhone):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		applog.Error(c, "contact.submit.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to send message."})
	}
	applog.Info(c, "contact.submit", map[string]any{"contact_id": contact.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message received!",
		"contact": contact,
	})
}

// GET /api/contacts (admin): phone stripped from every record.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	msgs, err := h.Contact.List()
	if err != nil {
		applog.Error(c, "contact.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not load messages"})
	}
	return c.JSON(msgs)
}

// GET /api/contact (admin): full records, phone included.
func (h *ContactHandler) ListFull(c *fiber.Ctx) error {
	msgs, err := h.Contact.ListFull()
	if err != nil {
		applog.Error(c, "contact.list_full.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not load messages"})
	}
	return c.JSON(msgs)
}
