package api

import "github.com/xiaogao007/Stickplanet/internal/services"

type loginInput struct {
	Code      string `json:"code" validate:"required"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}

type createPlanInput struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	StartDate        string   `json:"start_date" validate:"required"`
	EndDate          string   `json:"end_date" validate:"required"`
	TotalDays        int      `json:"total_days" validate:"required,min=1"`
	Frequency        string   `json:"frequency"`
	DailyTarget      string   `json:"daily_target"`
	ReminderEnabled  bool     `json:"reminder_enabled"`
	ReminderTimes    []string `json:"reminder_times"`
	MotivationText   string   `json:"motivation_text"`
	Status           string   `json:"status" validate:"omitempty,oneof=active paused completed abandoned"`
	TemplateCategory string   `json:"template_category"`
	CoverImage       string   `json:"cover_image"`
}

type planStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active paused completed abandoned"`
}

type createCheckInInput struct {
	PlanID    string   `json:"plan_id" validate:"required"`
	CheckDate string   `json:"check_date" validate:"required"`
	Completed *bool    `json:"completed"`
	Note      string   `json:"note"`
	Images    []string `json:"images"`
	Mood      string   `json:"mood" validate:"omitempty,oneof=happy normal sad"`
	IsMakeup  bool     `json:"is_makeup"`
}

type adoptTemplateInput struct {
	StartDate string `json:"start_date"`
}

type syncTemplatesInput struct {
	Templates []services.TemplateDef `json:"templates"`
}
