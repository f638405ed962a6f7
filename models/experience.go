package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExperienceType distinguishes work history entries from education and the rest.
type ExperienceType string

const (
	ExperienceWork       ExperienceType = "work"
	ExperienceInternship ExperienceType = "internship"
	ExperienceFreelance  ExperienceType = "freelance"
	ExperienceVolunteer  ExperienceType = "volunteer"
	ExperienceEducation  ExperienceType = "education"
)

func (t ExperienceType) Valid() bool {
	switch t {
	case ExperienceWork, ExperienceInternship, ExperienceFreelance, ExperienceVolunteer, ExperienceEducation:
		return true
	}
	return false
}

// Experience represents one entry in the work/education timeline.
// EndDate is nil for ongoing positions; IsCurrent is the display flag for that.
type Experience struct {
	ID           uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string         `json:"title" db:"title" gorm:"type:text;not null"`
	Company      string         `json:"company" db:"company" gorm:"type:text;not null"`
	Location     string         `json:"location" db:"location" gorm:"type:text"`
	Type         ExperienceType `json:"experience_type" db:"experience_type" gorm:"column:experience_type;type:text;not null;default:work"`
	StartDate    time.Time      `json:"start_date" db:"start_date" gorm:"type:date;not null"`
	EndDate      *time.Time     `json:"end_date,omitempty" db:"end_date" gorm:"type:date"`
	IsCurrent    bool           `json:"is_current" db:"is_current" gorm:"not null;default:false"`
	Description  string         `json:"description" db:"description" gorm:"type:text;not null"`
	SkillsGained []Skill        `json:"skills_gained,omitempty" gorm:"many2many:experience_skills"`
	Order        int            `json:"order" db:"display_order" gorm:"column:display_order;type:integer;not null;default:0"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
