package adminapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio/storage/model"
)

const (
	detailInvalidBody   = "Invalid body"
	detailInternalError = "Internal server error"
)

// detail answers with the error body shape shared by all routes
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// storeError maps an error returned by a storage backend to a response
func storeError(c *fiber.Ctx, err error) error {
	var notFound model.NotFoundError
	if errors.As(err, &notFound) {
		return detail(c, fiber.StatusNotFound, notFound.Error())
	}
	var invalid model.ValidationError
	if errors.As(err, &invalid) {
		return detail(c, fiber.StatusBadRequest, invalid.Error())
	}
	log.WithError(err).WithField("path", c.Path()).Error("storage operation failed")
	return detail(c, fiber.StatusInternalServerError, detailInternalError)
}
