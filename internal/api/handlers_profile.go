package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(profile)
}

func (handler *Handler) ListAchievements(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	achievements, err := handler.achievementService.ListForUser(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load achievements")
	}
	return c.JSON(achievements)
}

// RegenerateSyncKey mints a fresh catalog sync key for the calling
// admin. The plaintext appears in this response only.
func (handler *Handler) RegenerateSyncKey(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	key, err := handler.profileService.RegenerateSyncKey(profile.ID)
	if err != nil {
		if errors.Is(err, services.ErrSyncKeyForbidden) {
			return apiError(c, fiber.StatusForbidden, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to issue sync key")
	}
	return c.JSON(fiber.Map{"sync_key": key})
}
