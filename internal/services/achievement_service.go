package services

import (
	"fmt"
	"time"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

type AchievementRepository interface {
	ListByUser(userID string) ([]models.Achievement, error)
	ExistsByUserPlanType(userID string, planID string, milestoneType string) (bool, error)
	Create(achievement *models.Achievement) error
}

type AchievementService struct {
	achievements AchievementRepository
}

func NewAchievementService(achievements AchievementRepository) *AchievementService {
	return &AchievementService{achievements: achievements}
}

func (service *AchievementService) ListForUser(userID string) ([]models.Achievement, error) {
	return service.achievements.ListByUser(userID)
}

// CheckAndCreateMilestone creates at most one achievement per milestone
// threshold the first time checkedDays lands exactly on it. Passing a
// count between thresholds is a no-op, as is a repeat call for an
// already-recorded milestone.
func (service *AchievementService) CheckAndCreateMilestone(userID string, planID string, checkedDays int, now time.Time) error {
	for _, milestone := range models.DefaultMilestones() {
		if checkedDays != milestone.Days {
			continue
		}

		exists, err := service.achievements.ExistsByUserPlanType(userID, planID, milestone.Type)
		if err != nil {
			return fmt.Errorf("check milestone %s: %w", milestone.Type, err)
		}
		if exists {
			continue
		}

		achievement := models.Achievement{
			UserID:      userID,
			PlanID:      planID,
			Type:        milestone.Type,
			Title:       milestone.Title,
			Description: milestone.Description,
			Icon:        models.MilestoneIcon,
			AchievedAt:  now,
		}
		if err := service.achievements.Create(&achievement); err != nil {
			return fmt.Errorf("create milestone %s: %w", milestone.Type, err)
		}
	}
	return nil
}
