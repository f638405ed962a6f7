package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategory groups skills into the fixed sections the site renders.
type SkillCategory string

const (
	CategoryProgramming SkillCategory = "programming"
	CategoryFrameworks  SkillCategory = "frameworks"
	CategoryDatabases   SkillCategory = "databases"
	CategoryTools       SkillCategory = "tools"
	CategoryCloud       SkillCategory = "cloud"
	CategoryOther       SkillCategory = "other"
)

// SkillCategories lists every category in display order.
var SkillCategories = []SkillCategory{
	CategoryProgramming,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryTools,
	CategoryCloud,
	CategoryOther,
}

// SkillCategoryLabels maps categories to their display names.
var SkillCategoryLabels = map[SkillCategory]string{
	CategoryProgramming: "Programming Languages",
	CategoryFrameworks:  "Frameworks & Libraries",
	CategoryDatabases:   "Databases",
	CategoryTools:       "Tools & Technologies",
	CategoryCloud:       "Cloud & DevOps",
	CategoryOther:       "Other Skills",
}

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryProgramming, CategoryFrameworks, CategoryDatabases, CategoryTools, CategoryCloud, CategoryOther:
		return true
	}
	return false
}

// Proficiency is the self-assessed level attached to a skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// Skill represents a single technology or competency shown on the site
type Skill struct {
	ID          uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string        `json:"name" db:"name" gorm:"type:text;not null"`
	Category    SkillCategory `json:"category" db:"category" gorm:"type:text;not null;default:other;index"`
	Proficiency Proficiency   `json:"proficiency" db:"proficiency" gorm:"type:text;not null;default:intermediate"`
	Level       int           `json:"level" db:"level" gorm:"type:integer;not null"`
	Icon        string        `json:"icon" db:"icon" gorm:"type:text"`
	IsFeatured  bool          `json:"is_featured" db:"is_featured" gorm:"not null"`
	Order       int           `json:"order" db:"display_order" gorm:"column:display_order;type:integer;not null;default:0"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
