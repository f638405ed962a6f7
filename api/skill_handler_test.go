package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateSkillAppliesDefaults(t *testing.T) {
	db := newTestDatabase(t)
	handler := newSkillHandler(db.SkillRepo()).createSkill()

	req := httptest.NewRequest(http.MethodPost, "/admin/skill", strings.NewReader(`{"name": "Go"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	skills, err := db.SkillRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if skills[0].Level != 50 {
		t.Errorf("expected default level 50, got %d", skills[0].Level)
	}
	if string(skills[0].Category) != "other" || string(skills[0].Proficiency) != "intermediate" {
		t.Errorf("expected default category/proficiency, got %s/%s", skills[0].Category, skills[0].Proficiency)
	}
}

func TestCreateSkillKeepsExplicitLevel(t *testing.T) {
	db := newTestDatabase(t)
	handler := newSkillHandler(db.SkillRepo()).createSkill()

	req := httptest.NewRequest(http.MethodPost, "/admin/skill",
		strings.NewReader(`{"name": "Rust", "level": 30, "is_featured": false}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	skills, err := db.SkillRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if skills[0].Level != 30 {
		t.Errorf("explicit level must be kept, got %d", skills[0].Level)
	}
	if skills[0].IsFeatured {
		t.Error("skill created with is_featured=false must be stored unfeatured")
	}
}
