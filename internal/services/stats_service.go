package services

import (
	"math"
	"time"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

type StatsPlanReader interface {
	FindByID(planID string) (models.Plan, bool, error)
}

type StatsCheckInReader interface {
	ListCompletedByPlan(planID string) ([]models.CheckIn, error)
}

// PlanStats is the safe-empty statistics payload: a missing plan yields
// the zero value rather than an error, since callers are display code.
type PlanStats struct {
	CheckedDays    int `json:"checked_days"`
	CompletionRate int `json:"completion_rate"`
	CurrentStreak  int `json:"current_streak"`
	RemainingDays  int `json:"remaining_days"`
}

type StatsService struct {
	plans    StatsPlanReader
	checkIns StatsCheckInReader
}

func NewStatsService(plans StatsPlanReader, checkIns StatsCheckInReader) *StatsService {
	return &StatsService{
		plans:    plans,
		checkIns: checkIns,
	}
}

func (service *StatsService) BuildPlanStats(planID string, now time.Time, location *time.Location) (PlanStats, error) {
	if planID == "" {
		return PlanStats{}, nil
	}

	plan, found, err := service.plans.FindByID(planID)
	if err != nil {
		return PlanStats{}, err
	}
	if !found {
		return PlanStats{}, nil
	}

	checkIns, err := service.checkIns.ListCompletedByPlan(plan.ID)
	if err != nil {
		return PlanStats{}, err
	}

	return ComputePlanStats(plan, checkIns, now, location), nil
}

func (service *StatsService) StatsForPlan(plan models.Plan, now time.Time, location *time.Location) (PlanStats, error) {
	checkIns, err := service.checkIns.ListCompletedByPlan(plan.ID)
	if err != nil {
		return PlanStats{}, err
	}
	return ComputePlanStats(plan, checkIns, now, location), nil
}

// ComputePlanStats derives checked days, completion rate, current
// streak and remaining days from a plan and its completed check-ins.
func ComputePlanStats(plan models.Plan, completed []models.CheckIn, now time.Time, location *time.Location) PlanStats {
	today := DateAtLocation(now, location)

	days := make([]time.Time, 0, len(completed))
	for _, checkIn := range completed {
		days = append(days, DateAtLocation(checkIn.CheckDate, location))
	}

	return PlanStats{
		CheckedDays:    len(completed),
		CompletionRate: CompletionRate(len(completed), plan.TotalDays),
		CurrentStreak:  CurrentStreak(days, today),
		RemainingDays:  RemainingDays(plan.EndDate, today, location),
	}
}

// CompletionRate rounds half-up to a whole percentage.
func CompletionRate(checkedDays int, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return int(math.Round(float64(checkedDays) / float64(totalDays) * 100))
}

// RemainingDays counts whole days from today until the plan's end date,
// never below zero. An unparseable end date counts as no value.
func RemainingDays(endDate string, today time.Time, location *time.Location) int {
	end, ok := ParseDay(endDate, location)
	if !ok {
		return 0
	}
	remaining := int(math.Ceil(end.Sub(today).Hours() / 24))
	if remaining < 0 {
		return 0
	}
	return remaining
}
