package services

import (
	"testing"
	"time"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

type stubAchievementRepo struct {
	existing map[string]bool
	created  []models.Achievement
}

func newStubAchievementRepo() *stubAchievementRepo {
	return &stubAchievementRepo{existing: map[string]bool{}}
}

func (stub *stubAchievementRepo) ListByUser(string) ([]models.Achievement, error) {
	return append([]models.Achievement{}, stub.created...), nil
}

func (stub *stubAchievementRepo) ExistsByUserPlanType(userID string, planID string, milestoneType string) (bool, error) {
	return stub.existing[userID+"/"+planID+"/"+milestoneType], nil
}

func (stub *stubAchievementRepo) Create(achievement *models.Achievement) error {
	stub.existing[achievement.UserID+"/"+achievement.PlanID+"/"+achievement.Type] = true
	stub.created = append(stub.created, *achievement)
	return nil
}

func TestCheckAndCreateMilestoneExactMatchOnly(t *testing.T) {
	repo := newStubAchievementRepo()
	service := NewAchievementService(repo)
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	for _, days := range []int{1, 6, 8, 20, 22, 99, 101} {
		if err := service.CheckAndCreateMilestone("user-1", "plan-1", days, now); err != nil {
			t.Fatalf("milestone check for %d days failed: %v", days, err)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no achievements between thresholds, got %d", len(repo.created))
	}

	if err := service.CheckAndCreateMilestone("user-1", "plan-1", 7, now); err != nil {
		t.Fatalf("milestone check for 7 days failed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one achievement at 7 days, got %d", len(repo.created))
	}

	achievement := repo.created[0]
	if achievement.Type != "day_7" {
		t.Fatalf("expected type day_7, got %q", achievement.Type)
	}
	if achievement.Title != "坚持7天" {
		t.Fatalf("unexpected title %q", achievement.Title)
	}
	if achievement.Icon != models.MilestoneIcon {
		t.Fatalf("unexpected icon %q", achievement.Icon)
	}
	if !achievement.AchievedAt.Equal(now) {
		t.Fatalf("expected achieved_at %v, got %v", now, achievement.AchievedAt)
	}
}

func TestCheckAndCreateMilestoneIdempotent(t *testing.T) {
	repo := newStubAchievementRepo()
	service := NewAchievementService(repo)
	now := time.Now()

	if err := service.CheckAndCreateMilestone("user-1", "plan-1", 21, now); err != nil {
		t.Fatalf("first milestone check failed: %v", err)
	}
	if err := service.CheckAndCreateMilestone("user-1", "plan-1", 21, now); err != nil {
		t.Fatalf("repeat milestone check failed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected a single achievement after repeat check, got %d", len(repo.created))
	}
}

func TestCheckAndCreateMilestonePerPlan(t *testing.T) {
	repo := newStubAchievementRepo()
	service := NewAchievementService(repo)
	now := time.Now()

	if err := service.CheckAndCreateMilestone("user-1", "plan-1", 7, now); err != nil {
		t.Fatalf("milestone check failed: %v", err)
	}
	if err := service.CheckAndCreateMilestone("user-1", "plan-2", 7, now); err != nil {
		t.Fatalf("milestone check failed: %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected one achievement per plan, got %d", len(repo.created))
	}
}
