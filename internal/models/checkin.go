package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MoodHappy  = "happy"
	MoodNormal = "normal"
	MoodSad    = "sad"
)

// CheckIn records one day of a plan. Uniqueness per (plan, date) is an
// application invariant: writers must find-then-update, never blind
// insert.
type CheckIn struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PlanID    string    `gorm:"not null;index:idx_plan_date" json:"plan_id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	CheckDate time.Time `gorm:"type:date;not null;index:idx_plan_date" json:"check_date"`
	Completed bool      `gorm:"not null;default:true" json:"completed"`
	Note      string    `json:"note"`
	Images    []string  `gorm:"serializer:json" json:"images"`
	Mood      string    `json:"mood"`
	IsMakeup  bool      `gorm:"not null;default:false" json:"is_makeup"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (checkIn *CheckIn) BeforeCreate(*gorm.DB) error {
	if checkIn.ID == "" {
		checkIn.ID = uuid.NewString()
	}
	if checkIn.Images == nil {
		checkIn.Images = []string{}
	}
	return nil
}

func IsValidMood(mood string) bool {
	switch mood {
	case "", MoodHappy, MoodNormal, MoodSad:
		return true
	}
	return false
}
