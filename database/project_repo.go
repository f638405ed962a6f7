package database

import (
	"errors"
	"strings"

	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectPageSize is the fixed page size of the public projects listing.
const ProjectPageSize = 9

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows the public listing. Type must be a valid enum value
// or empty; Search matches case-insensitively against title, description and
// associated skill names.
type ProjectFilter struct {
	Type   models.ProjectType
	Search string
	Page   int
}

// ProjectPage is one page of the listing plus its pagination metadata.
type ProjectPage struct {
	Projects   []*models.Project
	Total      int64
	Page       int
	TotalPages int
	PageSize   int
}

// FindPage returns the requested page of projects matching the filter,
// ordered by explicit display order then recency. Out-of-range page numbers
// are clamped rather than rejected.
func (r *ProjectRepo) FindPage(filter ProjectFilter, pageSize int) (*ProjectPage, error) {
	q := r.db.Model(&models.Project{})

	if filter.Type != "" {
		q = q.Where("projects.project_type = ?", filter.Type)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.
			Joins("LEFT JOIN project_technologies ON project_technologies.project_id = projects.id").
			Joins("LEFT JOIN skills ON skills.id = project_technologies.skill_id").
			Where("LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ? OR LOWER(skills.name) LIKE ?",
				like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Distinct("projects.id").Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var projects []*models.Project
	err := q.
		Distinct("projects.*").
		Order("projects.display_order ASC, projects.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Technologies").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return &ProjectPage{
		Projects:   projects,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		PageSize:   pageSize,
	}, nil
}

// FindAll returns every project, curated ordering first.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Technologies").
		Order("is_featured DESC, display_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindFeatured returns up to limit featured projects for the home page.
func (r *ProjectRepo) FindFeatured(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Technologies").
		Where("is_featured = ?", true).
		Order("display_order ASC, created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindBySlug returns the project with the given slug, or nil when absent.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Technologies").Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByID returns a project by its ID, or nil when absent.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Technologies").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindRelated returns up to limit other projects of the same type.
func (r *ProjectRepo) FindRelated(projectType models.ProjectType, excludeID uuid.UUID, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Technologies").
		Where("project_type = ? AND id <> ?", projectType, excludeID).
		Order("display_order ASC, created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// CreateIfAbsent inserts the project unless its slug is already taken,
// reporting whether a row was written. The check and the insert are one
// statement (ON CONFLICT DO NOTHING on the slug index), so concurrent
// callers cannot both insert.
func (r *ProjectRepo) CreateIfAbsent(project *models.Project) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(project)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Overwrite replaces every synchronized field of the project matching
// project.Slug. Used by the batch sync's force path.
func (r *ProjectRepo) Overwrite(project *models.Project) error {
	return r.db.Model(&models.Project{}).
		Where("slug = ?", project.Slug).
		Updates(map[string]any{
			"title":                project.Title,
			"description":          project.Description,
			"detailed_description": project.DetailedDescription,
			"project_type":         project.Type,
			"status":               project.Status,
			"github_url":           project.GithubURL,
			"demo_url":             project.DemoURL,
			"is_featured":          project.IsFeatured,
			"display_order":        project.Order,
		}).Error
}

// UpdateDescriptions replaces only the description fields of the project with
// the given slug, leaving everything else untouched. No-op when the slug is
// unknown.
func (r *ProjectRepo) UpdateDescriptions(slug, description, detailedDescription string) error {
	return r.db.Model(&models.Project{}).
		Where("slug = ?", slug).
		Updates(map[string]any{
			"description":          description,
			"detailed_description": detailedDescription,
		}).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Select(clause.Associations).Delete(&models.Project{ID: id}).Error
}

// DeleteBySlug removes the project with the given slug. No-op when absent.
func (r *ProjectRepo) DeleteBySlug(slug string) error {
	return r.db.Where("slug = ?", slug).Delete(&models.Project{}).Error
}

// ReplaceTechnologies sets the project's skill associations.
func (r *ProjectRepo) ReplaceTechnologies(project *models.Project, skills []models.Skill) error {
	return r.db.Model(project).Association("Technologies").Replace(skills)
}
