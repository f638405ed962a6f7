package database

import (
	"github.com/bikalpokharel/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	skillRepo             *SkillRepo
	projectRepo           *ProjectRepo
	experienceRepo        *ExperienceRepo
	testimonialRepo       *TestimonialRepo
	contactRepo           *ContactRepo
	siteConfigurationRepo *SiteConfigurationRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		skillRepo:             NewSkillRepo(db),
		projectRepo:           NewProjectRepo(db),
		experienceRepo:        NewExperienceRepo(db),
		testimonialRepo:       NewTestimonialRepo(db),
		contactRepo:           NewContactRepo(db),
		siteConfigurationRepo: NewSiteConfigurationRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every entity, including the
// many-to-many join tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Testimonial{},
		&models.Contact{},
		&models.SiteConfiguration{},
	)
}

// Accessor methods for each repository

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SiteConfigurationRepo() *SiteConfigurationRepo {
	return d.siteConfigurationRepo
}
