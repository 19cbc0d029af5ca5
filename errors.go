package folio

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// handleError turns errors that no handler answered into the JSON error
// body used by all routes
func handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		msg = e.Message
	} else {
		log.WithError(err).WithField("path", ctx.Path()).Error("unhandled error")
	}
	return ctx.Status(code).JSON(fiber.Map{"detail": msg})
}
