package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaogao007/Stickplanet/internal/models"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

const (
	syncKeyHeader        = "X-Sync-Key"
	syncKeyAttemptLimit  = 5
	syncKeyAttemptWindow = 15 * time.Minute
)

func (handler *Handler) ListTemplates(c *fiber.Ctx) error {
	templates, err := handler.templateService.ListTemplates()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load templates")
	}
	return c.JSON(templates)
}

func (handler *Handler) AdoptTemplate(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := adoptTemplateInput{}
	if err := c.BodyParser(&input); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	plan, err := handler.planService.AdoptTemplate(c.Params("id"), profile.ID, input.StartDate, time.Now(), handler.location)
	if err != nil {
		return planErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// SyncTemplates upserts the catalog. The caller is either a logged-in
// admin or a holder of a valid sync key presented in the X-Sync-Key
// header. Key guesses are throttled per client address.
func (handler *Handler) SyncTemplates(c *fiber.Ctx) error {
	caller, err := handler.resolveSyncCaller(c)
	if err != nil {
		return err
	}

	input := syncTemplatesInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.templateService.SyncTemplates(input.Templates, caller)
	if err != nil {
		if errors.Is(err, services.ErrTemplateSyncForbidden) {
			return apiError(c, fiber.StatusForbidden, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "template sync failed")
	}
	return c.JSON(result)
}

// resolveSyncCaller returns the acting identity for a sync request. A
// non-nil error is a response already written to the client.
func (handler *Handler) resolveSyncCaller(c *fiber.Ctx) (services.SyncCaller, error) {
	if profile, err := handler.authenticateRequest(c); err == nil {
		return services.SyncCaller{ID: profile.ID, Role: profile.Role}, nil
	}

	key := strings.TrimSpace(c.Get(syncKeyHeader))
	if key == "" {
		return services.SyncCaller{}, apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.syncKeyLimiter.tooManyRecent(limiterKey, now, syncKeyAttemptLimit, syncKeyAttemptWindow) {
		return services.SyncCaller{}, apiError(c, fiber.StatusTooManyRequests, "too many attempts, try again later")
	}

	profile, err := handler.profileService.ResolveSyncKey(key)
	if err != nil {
		if errors.Is(err, services.ErrSyncKeyNotFound) {
			handler.syncKeyLimiter.addFailure(limiterKey, now, syncKeyAttemptWindow)
			return services.SyncCaller{}, apiError(c, fiber.StatusUnauthorized, "invalid sync key")
		}
		return services.SyncCaller{}, apiError(c, fiber.StatusInternalServerError, "sync key check failed")
	}

	handler.syncKeyLimiter.reset(limiterKey)
	return services.SyncCaller{ID: profile.ID, Role: models.RoleAdmin}, nil
}
