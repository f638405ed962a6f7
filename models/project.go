package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectType classifies what kind of project an entry is.
type ProjectType string

const (
	ProjectTypeWebApp      ProjectType = "web_app"
	ProjectTypeML          ProjectType = "ml_project"
	ProjectTypeMobileApp   ProjectType = "mobile_app"
	ProjectTypeAI          ProjectType = "ai_project"
	ProjectTypeDataScience ProjectType = "data_science"
	ProjectTypeOther       ProjectType = "other"
)

// ProjectTypes lists every type in display order, for filter dropdowns.
var ProjectTypes = []ProjectType{
	ProjectTypeWebApp,
	ProjectTypeML,
	ProjectTypeMobileApp,
	ProjectTypeAI,
	ProjectTypeDataScience,
	ProjectTypeOther,
}

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeWebApp, ProjectTypeML, ProjectTypeMobileApp, ProjectTypeAI, ProjectTypeDataScience, ProjectTypeOther:
		return true
	}
	return false
}

// ProjectStatus tracks the delivery state of a project.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in_progress"
	StatusPlanning   ProjectStatus = "planning"
	StatusOnHold     ProjectStatus = "on_hold"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanning, StatusOnHold:
		return true
	}
	return false
}

// Project represents a portfolio project with metadata.
// Slug is the stable lookup key and must be globally unique.
type Project struct {
	ID                  uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title               string        `json:"title" db:"title" gorm:"type:text;not null"`
	Slug                string        `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description         string        `json:"description" db:"description" gorm:"type:text;not null"`
	DetailedDescription string        `json:"detailed_description" db:"detailed_description" gorm:"type:text"`
	Image               string        `json:"image,omitempty" db:"image" gorm:"type:text"`
	Type                ProjectType   `json:"project_type" db:"project_type" gorm:"column:project_type;type:text;not null;default:web_app;index"`
	Status              ProjectStatus `json:"status" db:"status" gorm:"type:text;not null;default:completed"`
	Technologies        []Skill       `json:"technologies,omitempty" gorm:"many2many:project_technologies"`
	GithubURL           string        `json:"github_url" db:"github_url" gorm:"type:text"`
	DemoURL             string        `json:"demo_url" db:"demo_url" gorm:"type:text"`
	IsFeatured          bool          `json:"is_featured" db:"is_featured" gorm:"not null"`
	Order               int           `json:"order" db:"display_order" gorm:"column:display_order;type:integer;not null;default:0"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at" gorm:"not null"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
