package handlers

import "github.com/gofiber/fiber/v2"

// RegisterAPI mounts the JSON API. Shared between main and the HTTP
// tests so both exercise the same routing table. Extra middleware for
// the contact submission route (rate limiting) comes in via contactMW.
// "/products/featured" must be mounted before "/products/:id".
func RegisterAPI(app *fiber.App, d *Deps, adminSecret string, contactMW ...fiber.Handler) {
	admin := RequireAdmin(adminSecret)

	api := app.Group("/api")
	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/featured", d.ProductHandler.Featured)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Post("/products", admin, d.ProductHandler.Create)
	api.Put("/products/:id", admin, d.ProductHandler.Update)
	api.Delete("/products/:id", admin, d.ProductHandler.Delete)

	api.Post("/contact", append(contactMW, d.ContactHandler.Submit)...)
	api.Get("/contacts", admin, d.ContactHandler.List)
	api.Get("/contact", admin, d.ContactHandler.ListFull)
}
