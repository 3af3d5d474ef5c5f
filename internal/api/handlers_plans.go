package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaogao007/Stickplanet/internal/models"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

// planWithStats mirrors the list payload of the original backend: the
// plan record decorated with its live statistics.
type planWithStats struct {
	models.Plan
	services.PlanStats
}

func (handler *Handler) ListPlans(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plans, err := handler.planService.ListUserPlans(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plans")
	}

	now := time.Now()
	decorated := make([]planWithStats, 0, len(plans))
	for _, plan := range plans {
		stats, err := handler.statsService.StatsForPlan(plan, now, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load plan stats")
		}
		decorated = append(decorated, planWithStats{Plan: plan, PlanStats: stats})
	}

	return c.JSON(decorated)
}

func (handler *Handler) CreatePlan(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := createPlanInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid plan payload")
	}

	plan, err := handler.planService.CreatePlan(profile.ID, services.PlanInput{
		Name:             input.Name,
		Description:      input.Description,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		TotalDays:        input.TotalDays,
		Frequency:        input.Frequency,
		DailyTarget:      input.DailyTarget,
		ReminderEnabled:  input.ReminderEnabled,
		ReminderTimes:    input.ReminderTimes,
		MotivationText:   input.MotivationText,
		Status:           input.Status,
		TemplateCategory: input.TemplateCategory,
		CoverImage:       input.CoverImage,
	}, handler.location)
	if err != nil {
		if isPlanValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create plan")
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, err := handler.planService.OwnedPlan(c.Params("id"), profile.ID)
	if err != nil {
		return planErrorResponse(c, err)
	}
	return c.JSON(plan)
}

func (handler *Handler) UpdatePlanStatus(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := planStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid status")
	}

	plan, err := handler.planService.UpdateStatus(c.Params("id"), profile.ID, input.Status)
	if err != nil {
		return planErrorResponse(c, err)
	}
	return c.JSON(plan)
}

func (handler *Handler) DeletePlan(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.planService.DeletePlan(c.Params("id"), profile.ID); err != nil {
		return planErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func planErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPlanNotFound), errors.Is(err, services.ErrTemplateNotFound):
		return apiError(c, fiber.StatusNotFound, "plan not found")
	case errors.Is(err, services.ErrPlanNotOwned):
		return apiError(c, fiber.StatusForbidden, "plan not owned by caller")
	case isPlanValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, "plan operation failed")
}

func isPlanValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidPlanName) ||
		errors.Is(err, services.ErrInvalidTotalDays) ||
		errors.Is(err, services.ErrInvalidPlanDates) ||
		errors.Is(err, services.ErrInvalidPlanStatus)
}
