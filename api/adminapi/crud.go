package adminapi

import (
	"github.com/gofiber/fiber/v2"
)

// entityStore is the method set shared by the stores of the listable
// entities
type entityStore[T any] interface {
	List() ([]T, error)
	Create(item T) (*T, error)
	Get(ident string) (*T, error)
	Update(ident string, update T) (*T, error)
	Delete(ident string) error
}

func newZero[T any]() T {
	var zero T
	return zero
}

// registerCRUD wires list, create, get, replace and delete handlers for one
// entity on g. Request bodies are decoded over newItem(), so attributes a
// client leaves out take their defaults.
func registerCRUD[T any](g fiber.Router, store entityStore[T], newItem func() T) {
	g.Get(
		"/", func(c *fiber.Ctx) error {
			items, err := store.List()
			if err != nil {
				return storeError(c, err)
			}
			return c.JSON(items)
		},
	)

	g.Post(
		"/", func(c *fiber.Ctx) error {
			req := newItem()
			if err := c.BodyParser(&req); err != nil {
				return detail(c, fiber.StatusBadRequest, detailInvalidBody)
			}
			item, err := store.Create(req)
			if err != nil {
				return storeError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(item)
		},
	)

	g.Get(
		"/:id", func(c *fiber.Ctx) error {
			item, err := store.Get(c.Params("id"))
			if err != nil {
				return storeError(c, err)
			}
			return c.JSON(item)
		},
	)

	g.Put(
		"/:id", func(c *fiber.Ctx) error {
			req := newItem()
			if err := c.BodyParser(&req); err != nil {
				return detail(c, fiber.StatusBadRequest, detailInvalidBody)
			}
			item, err := store.Update(c.Params("id"), req)
			if err != nil {
				return storeError(c, err)
			}
			return c.JSON(item)
		},
	)

	g.Delete(
		"/:id", func(c *fiber.Ctx) error {
			if err := store.Delete(c.Params("id")); err != nil {
				return storeError(c, err)
			}
			return c.SendStatus(fiber.StatusNoContent)
		},
	)
}
