package api

import (
	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 5 << 20

// UploadImage stores a check-in photo and returns the reference the
// client embeds in its check-in payload, plus the public URL.
func (handler *Handler) UploadImage(c *fiber.Ctx) error {
	if _, ok := currentProfile(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "file exceeds 5MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "failed to read file")
	}
	defer file.Close()

	ref, err := handler.files.Save(fileHeader.Filename, file)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store file")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ref": ref,
		"url": handler.files.ResolveURL(ref),
	})
}
