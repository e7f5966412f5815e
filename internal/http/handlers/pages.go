package handlers

import "github.com/gofiber/fiber/v2"

// PageHandler serves the static HTML shells; all data loading happens
// client-side against the API.
type PageHandler struct{}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

func (h *PageHandler) Product(c *fiber.Ctx) error {
	return c.Render("product", fiber.Map{"ID": c.Params("id")})
}

func (h *PageHandler) Admin(c *fiber.Ctx) error {
	return c.Render("admin", fiber.Map{})
}

func (h *PageHandler) Contact(c *fiber.Ctx) error {
	return c.Render("contact", fiber.Map{})
}
