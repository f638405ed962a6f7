package database

import (
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add persists a new contact message.
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindAll returns every contact message, newest first.
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// CountUnread returns how many messages have not been read yet.
func (r *ContactRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

// MarkRead flips the is_read flag of one message. Rows are otherwise
// immutable after creation.
func (r *ContactRepo) MarkRead(id uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Contact{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
