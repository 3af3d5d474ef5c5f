package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

// GetPlanStats answers with zeroed statistics for plans the caller does
// not have, so the client can render an empty card without branching.
func (handler *Handler) GetPlanStats(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, err := handler.planService.OwnedPlan(c.Params("id"), profile.ID)
	if err != nil {
		switch err {
		case services.ErrPlanNotFound:
			return c.JSON(services.PlanStats{})
		case services.ErrPlanNotOwned:
			return apiError(c, fiber.StatusForbidden, "plan not owned by caller")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load plan")
	}

	stats, err := handler.statsService.StatsForPlan(plan, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plan stats")
	}
	return c.JSON(stats)
}
