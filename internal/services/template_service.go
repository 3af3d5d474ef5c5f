package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

var ErrTemplateSyncForbidden = errors.New("template sync requires admin role")

const defaultTemplateFrequency = "每日"

type TemplateDef struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TotalDays      int    `json:"total_days"`
	Frequency      string `json:"frequency"`
	DailyTarget    string `json:"daily_target"`
	MotivationText string `json:"motivation_text"`
	Category       string `json:"template_category"`
	CoverImage     string `json:"cover_image"`
}

type SyncCaller struct {
	ID   string
	Role string
}

type SyncResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type TemplateRepository interface {
	ListTemplates() ([]models.Plan, error)
	FindTemplateByName(name string) (models.Plan, bool, error)
	ListTemplateIDs(ids []string) ([]string, error)
	Create(plan *models.Plan) error
	Save(plan *models.Plan) error
}

type TemplateService struct {
	plans TemplateRepository
}

func NewTemplateService(plans TemplateRepository) *TemplateService {
	return &TemplateService{plans: plans}
}

// SyncTemplates upserts catalog templates keyed by name: an existing
// name is updated in place (id and created_at preserved), a new name is
// inserted. Items are processed one at a time; two syncs racing on the
// same fresh name can still both insert, which the store does not
// guard against.
func (service *TemplateService) SyncTemplates(defs []TemplateDef, caller SyncCaller) (SyncResult, error) {
	if caller.Role != models.RoleAdmin {
		return SyncResult{}, ErrTemplateSyncForbidden
	}

	result := SyncResult{}
	for _, def := range defs {
		normalized := normalizeTemplateDef(def)
		if normalized.Name == "" {
			continue
		}

		existing, found, err := service.plans.FindTemplateByName(normalized.Name)
		if err != nil {
			return result, fmt.Errorf("find template %q: %w", normalized.Name, err)
		}

		if found {
			applyTemplateDef(&existing, normalized)
			if err := service.plans.Save(&existing); err != nil {
				return result, fmt.Errorf("update template %q: %w", normalized.Name, err)
			}
			result.Updated++
			continue
		}

		template := models.Plan{}
		applyTemplateDef(&template, normalized)
		if err := service.plans.Create(&template); err != nil {
			return result, fmt.Errorf("insert template %q: %w", normalized.Name, err)
		}
		result.Inserted++
	}

	return result, nil
}

// ListTemplates returns the catalog, seeding the built-in hot templates
// first so a fresh deployment is never empty.
func (service *TemplateService) ListTemplates() ([]models.Plan, error) {
	if err := service.EnsureHotTemplates(); err != nil {
		return nil, err
	}
	return service.plans.ListTemplates()
}

// EnsureHotTemplates inserts the built-in templates whose fixed ids are
// not yet present. Keying by id makes repeated seeding a no-op.
func (service *TemplateService) EnsureHotTemplates() error {
	hot := models.DefaultHotTemplates()
	ids := make([]string, 0, len(hot))
	for _, template := range hot {
		ids = append(ids, template.ID)
	}

	existing, err := service.plans.ListTemplateIDs(ids)
	if err != nil {
		return fmt.Errorf("list hot template ids: %w", err)
	}
	existingSet := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}

	for _, template := range hot {
		if _, seeded := existingSet[template.ID]; seeded {
			continue
		}

		record := models.Plan{
			ID:               template.ID,
			Name:             template.Name,
			Description:      template.Description,
			TotalDays:        template.TotalDays,
			Frequency:        template.Frequency,
			DailyTarget:      template.DailyTarget,
			MotivationText:   template.MotivationText,
			Status:           models.PlanStatusActive,
			IsTemplate:       true,
			TemplateCategory: template.Category,
			CoverImage:       template.CoverImage(),
			ReminderTimes:    []string{},
		}
		if err := service.plans.Create(&record); err != nil {
			return fmt.Errorf("seed hot template %s: %w", template.ID, err)
		}
	}

	return nil
}

func normalizeTemplateDef(def TemplateDef) TemplateDef {
	def.Name = strings.TrimSpace(def.Name)
	if def.Frequency == "" {
		def.Frequency = defaultTemplateFrequency
	}
	return def
}

func applyTemplateDef(template *models.Plan, def TemplateDef) {
	template.UserID = ""
	template.Name = def.Name
	template.Description = def.Description
	template.StartDate = ""
	template.EndDate = ""
	template.TotalDays = def.TotalDays
	template.Frequency = def.Frequency
	template.DailyTarget = def.DailyTarget
	template.ReminderEnabled = false
	template.ReminderTimes = []string{}
	template.MotivationText = def.MotivationText
	template.Status = models.PlanStatusActive
	template.IsTemplate = true
	template.TemplateCategory = def.Category
	template.CoverImage = def.CoverImage
}
