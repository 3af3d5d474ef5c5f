package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlanStatusActive    = "active"
	PlanStatusPaused    = "paused"
	PlanStatusCompleted = "completed"
	PlanStatusAbandoned = "abandoned"
)

// Plan is either a user-owned habit plan or, when IsTemplate is set, a
// catalog template (no owner, empty placeholder dates).
type Plan struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"index;not null;default:''" json:"user_id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	StartDate        string    `gorm:"not null;default:''" json:"start_date"`
	EndDate          string    `gorm:"not null;default:''" json:"end_date"`
	TotalDays        int       `gorm:"not null" json:"total_days"`
	Frequency        string    `gorm:"not null;default:每日" json:"frequency"`
	DailyTarget      string    `json:"daily_target"`
	ReminderEnabled  bool      `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderTimes    []string  `gorm:"serializer:json" json:"reminder_times"`
	MotivationText   string    `json:"motivation_text"`
	Status           string    `gorm:"not null;default:active" json:"status"`
	IsTemplate       bool      `gorm:"not null;default:false;index" json:"is_template"`
	TemplateCategory string    `json:"template_category"`
	CoverImage       string    `json:"cover_image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (plan *Plan) BeforeCreate(*gorm.DB) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.ReminderTimes == nil {
		plan.ReminderTimes = []string{}
	}
	return nil
}

func IsValidPlanStatus(status string) bool {
	switch status {
	case PlanStatusActive, PlanStatusPaused, PlanStatusCompleted, PlanStatusAbandoned:
		return true
	}
	return false
}

const hotTemplateCoverBase = "/assets/images/temples"

// HotTemplate is a built-in catalog entry seeded under a fixed id so
// repeated seeding never duplicates it.
type HotTemplate struct {
	ID             string
	Name           string
	Description    string
	TotalDays      int
	Frequency      string
	DailyTarget    string
	MotivationText string
	Category       string
}

func DefaultHotTemplates() []HotTemplate {
	return []HotTemplate{
		{
			ID:             "citywalk-28",
			Name:           "周末 CityWalk 28 天",
			Description:    "拍照 + 咖啡 + 步行的轻度出逃计划，把周末留给市集、街区与朋友。",
			TotalDays:      28,
			Frequency:      "每周 2 次",
			DailyTarget:    "选择一条 CityWalk 路线，步行 8,000 步并记录 3 张照片",
			MotivationText: "生活要有松弛感，把“出门走走”做成一个仪式。",
			Category:       "城市探索",
		},
		{
			ID:             "early-riser-21",
			Name:           "早起自救 21 天",
			Description:    "7 点起床 + 30 分钟晨间例行，配合咖啡和拉伸，养成自律节奏。",
			TotalDays:      21,
			Frequency:      "每日",
			DailyTarget:    "7 点前起床，10 分钟拉伸 + 20 分钟阅读/写作",
			MotivationText: "把早晨还给自己，打工人也能拥有掌控感。",
			Category:       "效率提升",
		},
		{
			ID:             "home-fitness-35",
			Name:           "居家燃脂 35 天",
			Description:    "无器械 HIIT/Tabata 组合，搭配轻食和心情记录，让运动更好玩。",
			TotalDays:      35,
			Frequency:      "每日 20 分钟",
			DailyTarget:    "跟练 1 个燃脂课程，记录体感与心情，并完成拉伸",
			MotivationText: "多巴胺穿搭 + 汗水自拍，记录每一次心率飙升。",
			Category:       "体态管理",
		},
		{
			ID:             "commute-reading-50",
			Name:           "通勤阅读 50 天",
			Description:    "利用上下班碎片时间阅读 30 页，并做短笔记输出。",
			TotalDays:      50,
			Frequency:      "每日",
			DailyTarget:    "上下班各阅读 15 页，Obsidian 摘录 3 句话",
			MotivationText: "把刷短视频的时间换成精神富养，沉淀观点更自洽。",
			Category:       "自我成长",
		},
	}
}

func (template HotTemplate) CoverImage() string {
	return hotTemplateCoverBase + "/" + template.ID + ".png"
}
