package db

import (
	"time"

	"github.com/xiaogao007/Stickplanet/internal/models"
	"gorm.io/gorm"
)

type CheckInRepository struct {
	database *gorm.DB
}

func NewCheckInRepository(database *gorm.DB) *CheckInRepository {
	return &CheckInRepository{database: database}
}

func (repo *CheckInRepository) ListByPlan(planID string) ([]models.CheckIn, error) {
	checkIns := make([]models.CheckIn, 0)
	if err := repo.database.
		Where("plan_id = ?", planID).
		Order("check_date DESC, id DESC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (repo *CheckInRepository) ListCompletedByPlan(planID string) ([]models.CheckIn, error) {
	checkIns := make([]models.CheckIn, 0)
	if err := repo.database.
		Where("plan_id = ? AND completed = ?", planID, true).
		Order("check_date DESC, id DESC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (repo *CheckInRepository) CountCompletedByPlan(planID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.CheckIn{}).
		Where("plan_id = ? AND completed = ?", planID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *CheckInRepository) FindByPlanAndDayRange(planID string, dayStart time.Time, dayEnd time.Time) (models.CheckIn, bool, error) {
	checkIn := models.CheckIn{}
	result := repo.database.
		Where("plan_id = ? AND check_date >= ? AND check_date < ?", planID, dayStart, dayEnd).
		Order("check_date DESC, id DESC").
		Limit(1).
		Find(&checkIn)
	if result.Error != nil {
		return models.CheckIn{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return checkIn, true, nil
}

func (repo *CheckInRepository) ListByUserRange(userID string, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error) {
	checkIns := make([]models.CheckIn, 0)
	if err := repo.database.
		Where("user_id = ? AND check_date >= ? AND check_date < ?", userID, fromStart, toEnd).
		Order("check_date ASC, id ASC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (repo *CheckInRepository) Create(checkIn *models.CheckIn) error {
	return repo.database.Create(checkIn).Error
}

func (repo *CheckInRepository) Save(checkIn *models.CheckIn) error {
	return repo.database.Save(checkIn).Error
}
