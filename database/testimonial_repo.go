package database

import (
	"errors"

	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindAll returns every testimonial, active or not.
func (r *TestimonialRepo) FindAll() ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.Order("display_order ASC, created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

// FindActive returns up to limit active testimonials. A limit of 0 means all.
func (r *TestimonialRepo) FindActive(limit int) ([]*models.Testimonial, error) {
	q := r.db.Where("is_active = ?", true).Order("display_order ASC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var testimonials []*models.Testimonial
	err := q.Find(&testimonials).Error
	return testimonials, err
}

// FindByID returns a testimonial by its ID, or nil when absent.
func (r *TestimonialRepo) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Add inserts a new testimonial into the database
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update updates an existing testimonial in the database
func (r *TestimonialRepo) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete removes a testimonial from the database by id
func (r *TestimonialRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Testimonial{}, "id = ?", id).Error
}
