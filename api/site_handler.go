package api

import (
	"net/http"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type siteHandler struct {
	responder       Responder
	logger          zerolog.Logger
	configSource    *siteConfigSource
	skillRepo       *database.SkillRepo
	projectRepo     *database.ProjectRepo
	experienceRepo  *database.ExperienceRepo
	testimonialRepo *database.TestimonialRepo
}

func newSiteHandler(configSource *siteConfigSource, skillRepo *database.SkillRepo,
	projectRepo *database.ProjectRepo, experienceRepo *database.ExperienceRepo,
	testimonialRepo *database.TestimonialRepo) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		configSource:    configSource,
		skillRepo:       skillRepo,
		projectRepo:     projectRepo,
		experienceRepo:  experienceRepo,
		testimonialRepo: testimonialRepo,
	}
}

// homeSkillCategories are the four sections the home page renders.
var homeSkillCategories = []models.SkillCategory{
	models.CategoryProgramming,
	models.CategoryFrameworks,
	models.CategoryTools,
	models.CategoryCloud,
}

func groupSkills(skills []*models.Skill, categories []models.SkillCategory) map[models.SkillCategory][]*models.Skill {
	grouped := make(map[models.SkillCategory][]*models.Skill, len(categories))
	for _, category := range categories {
		grouped[category] = []*models.Skill{}
	}
	for _, skill := range skills {
		if _, wanted := grouped[skill.Category]; wanted {
			grouped[skill.Category] = append(grouped[skill.Category], skill)
		}
	}
	return grouped
}

// home composes the landing page: configuration, up to 6 featured projects,
// featured skills grouped by the four home categories, up to 3 active
// testimonials.
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := h.configSource.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site configuration", err))
			return
		}

		featuredProjects, err := h.projectRepo.FindFeatured(6)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "projects", err))
			return
		}

		skills, err := h.skillRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "skills", err))
			return
		}

		testimonials, err := h.testimonialRepo.FindActive(3)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"config":           config,
			"projects":         featuredProjects,
			"skills":           skills,
			"skill_categories": groupSkills(skills, homeSkillCategories),
			"testimonials":     testimonials,
		})
	}
}

// about composes the about page: configuration, the full skill list grouped
// by all six categories (keyed by display label), and the experience timeline.
func (h siteHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := h.configSource.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site configuration", err))
			return
		}

		allSkills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		grouped := groupSkills(allSkills, models.SkillCategories)
		labeled := make(map[string][]*models.Skill, len(grouped))
		for category, skills := range grouped {
			labeled[models.SkillCategoryLabels[category]] = skills
		}

		h.responder.WriteJSON(w, map[string]any{
			"config":           config,
			"skill_categories": labeled,
			"experiences":      experiences,
		})
	}
}
