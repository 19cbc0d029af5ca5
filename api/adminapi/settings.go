package adminapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folio-cms/folio/storage/model"
)

// registerSettings wires handlers for the site settings. The site uses a
// single row, so there is no listing and no deletion.
func registerSettings(g fiber.Router, store model.SiteSettingsStore) {
	g.Get(
		"/", func(c *fiber.Ctx) error {
			settings, err := store.Current()
			if err != nil {
				return storeError(c, err)
			}
			return c.JSON(settings)
		},
	)

	g.Post(
		"/", func(c *fiber.Ctx) error {
			req := model.NewSiteSettings()
			if err := c.BodyParser(&req); err != nil {
				return detail(c, fiber.StatusBadRequest, detailInvalidBody)
			}
			settings, err := store.Create(req)
			if err != nil {
				return storeError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(settings)
		},
	)

	g.Put(
		"/:id", func(c *fiber.Ctx) error {
			req := model.NewSiteSettings()
			if err := c.BodyParser(&req); err != nil {
				return detail(c, fiber.StatusBadRequest, detailInvalidBody)
			}
			settings, err := store.Update(c.Params("id"), req)
			if err != nil {
				return storeError(c, err)
			}
			return c.JSON(settings)
		},
	)
}
