package database

import (
	"testing"

	"github.com/bikalpokharel/portfolio-backend/models"
)

func TestFindFeaturedExcludesUnfeaturedSkills(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))

	featured := &models.Skill{Name: "Go", Category: models.CategoryProgramming, Proficiency: models.ProficiencyAdvanced, Level: 80, IsFeatured: true}
	hidden := &models.Skill{Name: "COBOL", Category: models.CategoryProgramming, Proficiency: models.ProficiencyBeginner, Level: 10, IsFeatured: false}
	for _, skill := range []*models.Skill{featured, hidden} {
		if err := repo.Add(skill); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	stored, err := repo.FindByID(hidden.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.IsFeatured {
		t.Error("skill created with is_featured=false must be stored unfeatured")
	}

	result, err := repo.FindFeatured()
	if err != nil {
		t.Fatalf("FindFeatured failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 featured skill, got %d", len(result))
	}
	if result[0].Name != "Go" {
		t.Errorf("expected the featured skill, got %q", result[0].Name)
	}
}
