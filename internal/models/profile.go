package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const DefaultNickname = "微信用户"

// Profile is created on first login and refreshed (nickname/avatar
// only) on later logins. The very first profile in the system gets the
// admin role.
type Profile struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OpenID      string    `gorm:"uniqueIndex;not null" json:"openid"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Nickname    string    `json:"nickname"`
	AvatarURL   string    `json:"avatar_url"`
	Role        string    `gorm:"not null;default:user" json:"role"`
	TotalDays   int       `gorm:"not null;default:0" json:"total_days"`
	Level       int       `gorm:"not null;default:1" json:"level"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	SyncKeyHash string    `gorm:"not null;default:''" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (profile *Profile) BeforeCreate(*gorm.DB) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	return nil
}

func (profile *Profile) IsAdmin() bool {
	return profile.Role == RoleAdmin
}
