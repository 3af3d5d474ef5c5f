package db

import (
	"github.com/xiaogao007/Stickplanet/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) FindByID(planID string) (models.Plan, bool, error) {
	plan := models.Plan{}
	result := repo.database.Where("id = ?", planID).Limit(1).Find(&plan)
	if result.Error != nil {
		return models.Plan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Plan{}, false, nil
	}
	return plan, true, nil
}

func (repo *PlanRepository) ListByUser(userID string) ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	if err := repo.database.
		Where("user_id = ? AND is_template = ?", userID, false).
		Order("created_at DESC, id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) ListTemplates() ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	if err := repo.database.
		Where("is_template = ?", true).
		Order("created_at DESC, id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) FindTemplateByName(name string) (models.Plan, bool, error) {
	plan := models.Plan{}
	result := repo.database.
		Where("is_template = ? AND name = ?", true, name).
		Limit(1).
		Find(&plan)
	if result.Error != nil {
		return models.Plan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Plan{}, false, nil
	}
	return plan, true, nil
}

func (repo *PlanRepository) ListTemplateIDs(ids []string) ([]string, error) {
	found := make([]string, 0, len(ids))
	if err := repo.database.Model(&models.Plan{}).
		Where("id IN ? AND is_template = ?", ids, true).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (repo *PlanRepository) Create(plan *models.Plan) error {
	return repo.database.Create(plan).Error
}

func (repo *PlanRepository) Save(plan *models.Plan) error {
	return repo.database.Save(plan).Error
}

func (repo *PlanRepository) UpdateByID(planID string, updates map[string]any) error {
	return repo.database.Model(&models.Plan{}).Where("id = ?", planID).Updates(updates).Error
}

func (repo *PlanRepository) DeleteWithCheckIns(planID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", planID).Delete(&models.Plan{}).Error
	})
}
