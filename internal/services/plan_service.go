package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanNotOwned      = errors.New("plan not owned by caller")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrInvalidPlanName   = errors.New("invalid plan name")
	ErrInvalidTotalDays  = errors.New("total days must be at least 1")
	ErrInvalidPlanDates  = errors.New("invalid plan dates")
	ErrInvalidPlanStatus = errors.New("invalid plan status")
)

const defaultPlanFrequency = "daily"

type PlanInput struct {
	Name             string
	Description      string
	StartDate        string
	EndDate          string
	TotalDays        int
	Frequency        string
	DailyTarget      string
	ReminderEnabled  bool
	ReminderTimes    []string
	MotivationText   string
	Status           string
	TemplateCategory string
	CoverImage       string
}

type PlanRepository interface {
	FindByID(planID string) (models.Plan, bool, error)
	ListByUser(userID string) ([]models.Plan, error)
	Create(plan *models.Plan) error
	UpdateByID(planID string, updates map[string]any) error
	DeleteWithCheckIns(planID string) error
}

type PlanService struct {
	plans PlanRepository
}

func NewPlanService(plans PlanRepository) *PlanService {
	return &PlanService{plans: plans}
}

func (service *PlanService) CreatePlan(userID string, input PlanInput, location *time.Location) (models.Plan, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Plan{}, ErrInvalidPlanName
	}
	if input.TotalDays < 1 {
		return models.Plan{}, ErrInvalidTotalDays
	}

	startDay, startOK := ParseDay(input.StartDate, location)
	endDay, endOK := ParseDay(input.EndDate, location)
	if !startOK || !endOK || endDay.Before(startDay) {
		return models.Plan{}, ErrInvalidPlanDates
	}

	status := input.Status
	if status == "" {
		status = models.PlanStatusActive
	}
	if !models.IsValidPlanStatus(status) {
		return models.Plan{}, ErrInvalidPlanStatus
	}

	frequency := strings.TrimSpace(input.Frequency)
	if frequency == "" {
		frequency = defaultPlanFrequency
	}
	reminderTimes := input.ReminderTimes
	if reminderTimes == nil {
		reminderTimes = []string{}
	}

	plan := models.Plan{
		UserID:           userID,
		Name:             name,
		Description:      input.Description,
		StartDate:        FormatDay(startDay),
		EndDate:          FormatDay(endDay),
		TotalDays:        input.TotalDays,
		Frequency:        frequency,
		DailyTarget:      input.DailyTarget,
		ReminderEnabled:  input.ReminderEnabled,
		ReminderTimes:    reminderTimes,
		MotivationText:   input.MotivationText,
		Status:           status,
		IsTemplate:       false,
		TemplateCategory: input.TemplateCategory,
		CoverImage:       input.CoverImage,
	}
	if err := service.plans.Create(&plan); err != nil {
		return models.Plan{}, fmt.Errorf("create plan: %w", err)
	}
	return plan, nil
}

func (service *PlanService) ListUserPlans(userID string) ([]models.Plan, error) {
	return service.plans.ListByUser(userID)
}

// OwnedPlan loads a non-template plan and enforces that the caller owns it.
func (service *PlanService) OwnedPlan(planID string, userID string) (models.Plan, error) {
	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return models.Plan{}, fmt.Errorf("load plan: %w", err)
	}
	if !found || plan.IsTemplate {
		return models.Plan{}, ErrPlanNotFound
	}
	if plan.UserID != userID {
		return models.Plan{}, ErrPlanNotOwned
	}
	return plan, nil
}

func (service *PlanService) UpdateStatus(planID string, userID string, status string) (models.Plan, error) {
	if !models.IsValidPlanStatus(status) {
		return models.Plan{}, ErrInvalidPlanStatus
	}

	plan, err := service.OwnedPlan(planID, userID)
	if err != nil {
		return models.Plan{}, err
	}

	if err := service.plans.UpdateByID(plan.ID, map[string]any{"status": status}); err != nil {
		return models.Plan{}, fmt.Errorf("update plan status: %w", err)
	}
	plan.Status = status
	return plan, nil
}

func (service *PlanService) DeletePlan(planID string, userID string) error {
	plan, err := service.OwnedPlan(planID, userID)
	if err != nil {
		return err
	}
	if err := service.plans.DeleteWithCheckIns(plan.ID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// AdoptTemplate copies a catalog template into a fresh plan owned by
// the user, with real dates spanning the template's duration starting
// at startDate (today when absent). The template record is not touched.
func (service *PlanService) AdoptTemplate(templateID string, userID string, startDate string, now time.Time, location *time.Location) (models.Plan, error) {
	template, found, err := service.plans.FindByID(templateID)
	if err != nil {
		return models.Plan{}, fmt.Errorf("load template: %w", err)
	}
	if !found || !template.IsTemplate {
		return models.Plan{}, ErrTemplateNotFound
	}

	startDay, ok := ParseDay(startDate, location)
	if !ok {
		if strings.TrimSpace(startDate) != "" {
			return models.Plan{}, ErrInvalidPlanDates
		}
		startDay = DateAtLocation(now, location)
	}
	totalDays := template.TotalDays
	if totalDays < 1 {
		return models.Plan{}, ErrInvalidTotalDays
	}
	endDay := startDay.AddDate(0, 0, totalDays-1)

	plan := models.Plan{
		UserID:           userID,
		Name:             template.Name,
		Description:      template.Description,
		StartDate:        FormatDay(startDay),
		EndDate:          FormatDay(endDay),
		TotalDays:        totalDays,
		Frequency:        template.Frequency,
		DailyTarget:      template.DailyTarget,
		ReminderEnabled:  false,
		ReminderTimes:    []string{},
		MotivationText:   template.MotivationText,
		Status:           models.PlanStatusActive,
		IsTemplate:       false,
		TemplateCategory: template.TemplateCategory,
		CoverImage:       template.CoverImage,
	}
	if err := service.plans.Create(&plan); err != nil {
		return models.Plan{}, fmt.Errorf("adopt template: %w", err)
	}
	return plan, nil
}
