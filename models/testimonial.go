package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial represents a quote from a client or colleague.
// Rating is nominally 1-5 but only advisory.
type Testimonial struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Position  string    `json:"position" db:"position" gorm:"type:text"`
	Company   string    `json:"company" db:"company" gorm:"type:text"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Image     string    `json:"image,omitempty" db:"image" gorm:"type:text"`
	Rating    int       `json:"rating" db:"rating" gorm:"type:integer;not null"`
	IsActive  bool      `json:"is_active" db:"is_active" gorm:"not null"`
	Order     int       `json:"order" db:"display_order" gorm:"column:display_order;type:integer;not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
