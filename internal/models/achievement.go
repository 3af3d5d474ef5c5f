package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement marks a milestone reached once for a (user, plan, type)
// triple and is never mutated afterwards.
type Achievement struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	PlanID      string    `gorm:"not null" json:"plan_id"`
	Type        string    `gorm:"not null" json:"type"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	AchievedAt  time.Time `json:"achieved_at"`
}

func (achievement *Achievement) BeforeCreate(*gorm.DB) error {
	if achievement.ID == "" {
		achievement.ID = uuid.NewString()
	}
	return nil
}

type Milestone struct {
	Days        int
	Type        string
	Title       string
	Description string
}

const MilestoneIcon = "🏆"

func DefaultMilestones() []Milestone {
	return []Milestone{
		{Days: 7, Type: "day_7", Title: "坚持7天", Description: "连续打卡7天，养成习惯的开始！"},
		{Days: 21, Type: "day_21", Title: "坚持21天", Description: "21天习惯养成，你已经做到了！"},
		{Days: 50, Type: "day_50", Title: "坚持50天", Description: "50天坚持不懈，你是最棒的！"},
		{Days: 100, Type: "day_100", Title: "坚持100天", Description: "百日坚持，成就非凡！"},
	}
}
