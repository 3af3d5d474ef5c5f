package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/xiaogao007/Stickplanet/internal/models"
)

type fakeTemplateRepo struct {
	templates []models.Plan
	nextID    int
}

func (fake *fakeTemplateRepo) ListTemplates() ([]models.Plan, error) {
	return append([]models.Plan{}, fake.templates...), nil
}

func (fake *fakeTemplateRepo) FindTemplateByName(name string) (models.Plan, bool, error) {
	for _, template := range fake.templates {
		if template.Name == name {
			return template, true, nil
		}
	}
	return models.Plan{}, false, nil
}

func (fake *fakeTemplateRepo) ListTemplateIDs(ids []string) ([]string, error) {
	present := []string{}
	for _, id := range ids {
		for _, template := range fake.templates {
			if template.ID == id {
				present = append(present, id)
				break
			}
		}
	}
	return present, nil
}

func (fake *fakeTemplateRepo) Create(plan *models.Plan) error {
	if plan.ID == "" {
		fake.nextID++
		plan.ID = fmt.Sprintf("template-%d", fake.nextID)
	}
	fake.templates = append(fake.templates, *plan)
	return nil
}

func (fake *fakeTemplateRepo) Save(plan *models.Plan) error {
	for index := range fake.templates {
		if fake.templates[index].ID == plan.ID {
			fake.templates[index] = *plan
			return nil
		}
	}
	return errors.New("template not found")
}

func TestSyncTemplatesRequiresAdmin(t *testing.T) {
	service := NewTemplateService(&fakeTemplateRepo{})

	_, err := service.SyncTemplates([]TemplateDef{{Name: "晨跑"}}, SyncCaller{ID: "user-1", Role: models.RoleUser})
	if !errors.Is(err, ErrTemplateSyncForbidden) {
		t.Fatalf("expected ErrTemplateSyncForbidden, got %v", err)
	}
}

func TestSyncTemplatesInsertThenUpdate(t *testing.T) {
	repo := &fakeTemplateRepo{}
	service := NewTemplateService(repo)
	admin := SyncCaller{ID: "admin-1", Role: models.RoleAdmin}

	defs := []TemplateDef{
		{Name: "晨跑", Description: "每天跑步", TotalDays: 28},
		{Name: "早睡", Description: "23点前睡觉", TotalDays: 21},
	}

	first, err := service.SyncTemplates(defs, admin)
	if err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	if first.Inserted != 2 || first.Updated != 0 {
		t.Fatalf("expected 2 inserted, 0 updated, got %+v", first)
	}

	originalID := ""
	for _, template := range repo.templates {
		if template.Name == "晨跑" {
			originalID = template.ID
		}
	}

	defs[0].Description = "每天跑步5公里"
	second, err := service.SyncTemplates(defs, admin)
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if second.Inserted != 0 || second.Updated != 2 {
		t.Fatalf("expected 0 inserted, 2 updated, got %+v", second)
	}
	if len(repo.templates) != 2 {
		t.Fatalf("expected 2 stored templates, got %d", len(repo.templates))
	}

	for _, template := range repo.templates {
		if template.Name != "晨跑" {
			continue
		}
		if template.ID != originalID {
			t.Fatalf("expected update to preserve id %q, got %q", originalID, template.ID)
		}
		if template.Description != "每天跑步5公里" {
			t.Fatalf("expected updated description, got %q", template.Description)
		}
		if !template.IsTemplate {
			t.Fatalf("expected record to stay a template")
		}
		if template.StartDate != "" || template.EndDate != "" {
			t.Fatalf("expected template to carry no dates, got %q/%q", template.StartDate, template.EndDate)
		}
	}
}

func TestSyncTemplatesSkipsBlankNamesAndDefaultsFrequency(t *testing.T) {
	repo := &fakeTemplateRepo{}
	service := NewTemplateService(repo)

	result, err := service.SyncTemplates([]TemplateDef{
		{Name: "   "},
		{Name: ""},
		{Name: "阅读"},
	}, SyncCaller{ID: "admin-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.Inserted != 1 {
		t.Fatalf("expected 1 inserted after skipping blanks, got %d", result.Inserted)
	}
	if repo.templates[0].Frequency != "每日" {
		t.Fatalf("expected default frequency, got %q", repo.templates[0].Frequency)
	}
}

func TestEnsureHotTemplatesSeedsOnceByID(t *testing.T) {
	repo := &fakeTemplateRepo{}
	service := NewTemplateService(repo)

	if err := service.EnsureHotTemplates(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	hot := models.DefaultHotTemplates()
	if len(repo.templates) != len(hot) {
		t.Fatalf("expected %d seeded templates, got %d", len(hot), len(repo.templates))
	}

	if err := service.EnsureHotTemplates(); err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	if len(repo.templates) != len(hot) {
		t.Fatalf("expected repeat seed to be a no-op, got %d templates", len(repo.templates))
	}

	seeded := map[string]models.Plan{}
	for _, template := range repo.templates {
		seeded[template.ID] = template
	}
	for _, want := range hot {
		got, ok := seeded[want.ID]
		if !ok {
			t.Fatalf("expected hot template %s to be seeded", want.ID)
		}
		if got.Name != want.Name {
			t.Fatalf("expected name %q for %s, got %q", want.Name, want.ID, got.Name)
		}
		if !got.IsTemplate {
			t.Fatalf("expected %s to be a template", want.ID)
		}
	}
}

func TestListTemplatesSeedsHotTemplatesFirst(t *testing.T) {
	repo := &fakeTemplateRepo{}
	service := NewTemplateService(repo)

	templates, err := service.ListTemplates()
	if err != nil {
		t.Fatalf("list templates failed: %v", err)
	}
	if len(templates) != len(models.DefaultHotTemplates()) {
		t.Fatalf("expected catalog to be seeded on first list, got %d entries", len(templates))
	}
}
