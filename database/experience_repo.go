package database

import (
	"errors"

	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns the full timeline, most recent start date first.
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Preload("SkillsGained").
		Order("start_date DESC, display_order ASC").
		Find(&experiences).Error
	return experiences, err
}

// FindByID returns an experience entry by its ID, or nil when absent.
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.Preload("SkillsGained").First(&experience, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Add inserts a new experience entry into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Update updates an existing experience entry in the database
func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// Delete removes an experience entry from the database by id
func (r *ExperienceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}
