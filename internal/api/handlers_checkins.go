package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

func (handler *Handler) CreateCheckIn(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := createCheckInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid check-in payload")
	}

	plan, err := handler.planService.OwnedPlan(input.PlanID, profile.ID)
	if err != nil {
		return planErrorResponse(c, err)
	}

	checkIn, err := handler.checkInService.UpsertCheckIn(profile.ID, plan.ID, services.CheckInInput{
		Date:      input.CheckDate,
		Completed: input.Completed,
		Note:      input.Note,
		Images:    input.Images,
		Mood:      input.Mood,
		IsMakeup:  input.IsMakeup,
	}, time.Now(), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCheckInDate) || errors.Is(err, services.ErrInvalidMood) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save check-in")
	}

	return c.Status(fiber.StatusCreated).JSON(checkIn)
}

func (handler *Handler) ListPlanCheckIns(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, err := handler.planService.OwnedPlan(c.Params("id"), profile.ID)
	if err != nil {
		return planErrorResponse(c, err)
	}

	checkIns, err := handler.checkInService.ListForPlan(plan.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	return c.JSON(checkIns)
}

// ListMonthCheckIns serves the calendar view: every check-in of the
// caller within the requested year/month.
func (handler *Handler) ListMonthCheckIns(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	year, yearErr := strconv.Atoi(c.Query("year"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	if yearErr != nil || monthErr != nil {
		return apiError(c, fiber.StatusBadRequest, "year and month are required")
	}

	checkIns, err := handler.checkInService.ListForMonth(profile.ID, year, month, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	return c.JSON(checkIns)
}
