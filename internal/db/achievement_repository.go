package db

import (
	"github.com/xiaogao007/Stickplanet/internal/models"
	"gorm.io/gorm"
)

type AchievementRepository struct {
	database *gorm.DB
}

func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{database: database}
}

func (repo *AchievementRepository) ListByUser(userID string) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("achieved_at DESC, id DESC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (repo *AchievementRepository) ExistsByUserPlanType(userID string, planID string, milestoneType string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Achievement{}).
		Where("user_id = ? AND plan_id = ? AND type = ?", userID, planID, milestoneType).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AchievementRepository) Create(achievement *models.Achievement) error {
	return repo.database.Create(achievement).Error
}
