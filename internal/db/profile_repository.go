package db

import (
	"github.com/xiaogao007/Stickplanet/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) CountProfiles() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ProfileRepository) FindByID(profileID string) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("id = ?", profileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) FindByOpenID(openID string) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("open_id = ?", openID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) UpdateByID(profileID string, updates map[string]any) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", profileID).Updates(updates).Error
}

func (repo *ProfileRepository) ListAdminsWithSyncKeyHash() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := repo.database.
		Where("role = ? AND sync_key_hash <> ''", models.RoleAdmin).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
