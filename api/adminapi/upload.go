package adminapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio/upload"
)

// uploadFormField is the multipart field carrying the uploaded file
const uploadFormField = "file"

// registerUpload wires the upload route
func registerUpload(r fiber.Router, store *upload.Store, guard fiber.Handler) {
	r.Post(
		"/upload", guard, func(c *fiber.Ctx) error {
			fh, err := c.FormFile(uploadFormField)
			if err != nil {
				return detail(c, fiber.StatusBadRequest, upload.ErrNoFileProvided.Error())
			}
			f, err := fh.Open()
			if err != nil {
				log.WithError(err).Error("could not open uploaded file")
				return detail(c, fiber.StatusInternalServerError, detailInternalError)
			}
			defer f.Close()

			asset, err := store.Save(fh.Filename, f)
			if err != nil {
				return uploadError(c, err)
			}
			return c.JSON(
				fiber.Map{
					"file_url":  asset.PublicURL,
					"file_type": asset.Category.Dir(),
				},
			)
		},
	)
}

func uploadError(c *fiber.Ctx, err error) error {
	var unsupported upload.UnsupportedFileTypeError
	switch {
	case errors.Is(err, upload.ErrNoFileProvided):
		return detail(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &unsupported):
		return detail(c, fiber.StatusBadRequest, unsupported.Error())
	case errors.Is(err, upload.ErrFileTooLarge):
		return detail(c, fiber.StatusRequestEntityTooLarge, err.Error())
	default:
		log.WithError(err).Error("could not store upload")
		return detail(c, fiber.StatusInternalServerError, "Could not store file")
	}
}
