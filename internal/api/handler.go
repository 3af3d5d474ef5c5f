package api

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/xiaogao007/Stickplanet/internal/db"
	"github.com/xiaogao007/Stickplanet/internal/identity"
	"github.com/xiaogao007/Stickplanet/internal/services"
	"github.com/xiaogao007/Stickplanet/internal/storage"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	identity     identity.Provider
	files        storage.FileStore
	validate     *validator.Validate

	repositories       *db.Repositories
	profileService     *services.ProfileService
	planService        *services.PlanService
	checkInService     *services.CheckInService
	statsService       *services.StatsService
	templateService    *services.TemplateService
	achievementService *services.AchievementService

	syncKeyLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, provider identity.Provider, files storage.FileStore, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:             database,
		secretKey:      []byte(secretKey),
		location:       location,
		cookieSecure:   cookieSecure,
		identity:       provider,
		files:          files,
		validate:       validator.New(),
		syncKeyLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles)
	handler.planService = services.NewPlanService(handler.repositories.Plans)
	handler.achievementService = services.NewAchievementService(handler.repositories.Achievements)
	handler.checkInService = services.NewCheckInService(handler.repositories.CheckIns, handler.achievementService)
	handler.statsService = services.NewStatsService(handler.repositories.Plans, handler.repositories.CheckIns)
	handler.templateService = services.NewTemplateService(handler.repositories.Plans)
	return handler
}
