package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

var (
	ErrInvalidCheckInDate = errors.New("invalid check-in date")
	ErrInvalidMood        = errors.New("invalid mood")
	ErrInvalidMonth       = errors.New("invalid month")
)

type CheckInInput struct {
	Date      string
	Completed *bool
	Note      string
	Images    []string
	Mood      string
	IsMakeup  bool
}

type CheckInRepository interface {
	ListByPlan(planID string) ([]models.CheckIn, error)
	FindByPlanAndDayRange(planID string, dayStart time.Time, dayEnd time.Time) (models.CheckIn, bool, error)
	ListByUserRange(userID string, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error)
	CountCompletedByPlan(planID string) (int64, error)
	Create(checkIn *models.CheckIn) error
	Save(checkIn *models.CheckIn) error
}

type MilestoneRecorder interface {
	CheckAndCreateMilestone(userID string, planID string, checkedDays int, now time.Time) error
}

type CheckInService struct {
	checkIns   CheckInRepository
	milestones MilestoneRecorder
}

func NewCheckInService(checkIns CheckInRepository, milestones MilestoneRecorder) *CheckInService {
	return &CheckInService{
		checkIns:   checkIns,
		milestones: milestones,
	}
}

// UpsertCheckIn finds the record for (plan, day) and updates it, or
// creates one when the day has no record yet. The milestone check runs
// after the write against a fresh completed-day count, so a check-in
// that lands on a threshold is credited immediately.
func (service *CheckInService) UpsertCheckIn(userID string, planID string, input CheckInInput, now time.Time, location *time.Location) (models.CheckIn, error) {
	day, ok := ParseDay(input.Date, location)
	if !ok {
		return models.CheckIn{}, ErrInvalidCheckInDate
	}
	if !models.IsValidMood(input.Mood) {
		return models.CheckIn{}, ErrInvalidMood
	}

	completed := true
	if input.Completed != nil {
		completed = *input.Completed
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	dayStart, dayEnd := DayRange(day, location)
	checkIn, found, err := service.checkIns.FindByPlanAndDayRange(planID, dayStart, dayEnd)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("load check-in: %w", err)
	}

	if found {
		checkIn.Completed = completed
		checkIn.Note = input.Note
		checkIn.Images = images
		checkIn.Mood = input.Mood
		checkIn.IsMakeup = input.IsMakeup
		if err := service.checkIns.Save(&checkIn); err != nil {
			return models.CheckIn{}, fmt.Errorf("update check-in: %w", err)
		}
	} else {
		checkIn = models.CheckIn{
			PlanID:    planID,
			UserID:    userID,
			CheckDate: dayStart,
			Completed: completed,
			Note:      input.Note,
			Images:    images,
			Mood:      input.Mood,
			IsMakeup:  input.IsMakeup,
		}
		if err := service.checkIns.Create(&checkIn); err != nil {
			return models.CheckIn{}, fmt.Errorf("create check-in: %w", err)
		}
	}

	if completed {
		checkedDays, err := service.checkIns.CountCompletedByPlan(planID)
		if err != nil {
			return models.CheckIn{}, fmt.Errorf("count checked days: %w", err)
		}
		if err := service.milestones.CheckAndCreateMilestone(userID, planID, int(checkedDays), now); err != nil {
			// The check-in itself is stored; a failed milestone write
			// only costs the badge, which the next threshold hit retries.
			log.Printf("milestone check failed for plan %s: %v", planID, err)
		}
	}

	return checkIn, nil
}

func (service *CheckInService) ListForPlan(planID string) ([]models.CheckIn, error) {
	return service.checkIns.ListByPlan(planID)
}

func (service *CheckInService) ListForMonth(userID string, year int, month int, location *time.Location) ([]models.CheckIn, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if location == nil {
		location = time.UTC
	}

	fromStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, location)
	toEnd := fromStart.AddDate(0, 1, 0)
	return service.checkIns.ListByUserRange(userID, fromStart, toEnd)
}
