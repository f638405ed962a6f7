package database

import (
	"errors"

	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns every skill ordered by category, then display order, then name.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("category ASC, display_order ASC, name ASC").Find(&skills).Error
	return skills, err
}

// FindFeatured returns the skills flagged for the home page.
func (r *SkillRepo) FindFeatured() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Where("is_featured = ?", true).
		Order("category ASC, display_order ASC, name ASC").
		Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or nil when absent.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
