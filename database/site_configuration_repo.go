package database

import (
	"github.com/bikalpokharel/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfigurationRepo struct {
	db *gorm.DB
}

func NewSiteConfigurationRepo(db *gorm.DB) *SiteConfigurationRepo {
	return &SiteConfigurationRepo{db}
}

// Ensure returns the singleton configuration row, creating it with default
// values if absent. The insert uses ON CONFLICT DO NOTHING on the fixed
// primary key, so concurrent callers can never produce a second row; no
// read-then-write sequence is involved.
func (r *SiteConfigurationRepo) Ensure() (*models.SiteConfiguration, error) {
	defaults := models.DefaultSiteConfiguration()
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, err
	}

	var config models.SiteConfiguration
	if err := r.db.First(&config, models.SiteConfigurationID).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// Update overwrites the singleton row. The primary key is forced to the fixed
// identifier so a caller can never create a second configuration this way.
func (r *SiteConfigurationRepo) Update(config *models.SiteConfiguration) error {
	config.ID = models.SiteConfigurationID
	return r.db.Save(config).Error
}

// Count reports how many configuration rows exist. Anything other than 0 or 1
// indicates a broken constraint.
func (r *SiteConfigurationRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SiteConfiguration{}).Count(&count).Error
	return count, err
}
