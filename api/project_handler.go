package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/bikalpokharel/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	skillRepo   *database.SkillRepo
	mediaRoot   string
}

func newProjectHandler(projectRepo *database.ProjectRepo, skillRepo *database.SkillRepo, mediaRoot string) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		mediaRoot:   mediaRoot,
	}
}

// listProjects serves the public, paginated projects listing with optional
// type filter and free-text search. Unknown type values are ignored rather
// than rejected.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := database.ProjectFilter{
			Search: query.Get("search"),
		}

		if projectType := models.ProjectType(query.Get("type")); projectType.Valid() {
			filter.Type = projectType
		}

		if page, err := strconv.Atoi(query.Get("page")); err == nil {
			filter.Page = page
		}

		page, err := h.projectRepo.FindPage(filter, database.ProjectPageSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"projects":      page.Projects,
			"total":         page.Total,
			"page":          page.Page,
			"total_pages":   page.TotalPages,
			"page_size":     page.PageSize,
			"project_types": models.ProjectTypes,
			"current_type":  filter.Type,
			"search":        filter.Search,
		})
	}
}

// projectDetail serves one project by slug plus up to 3 related projects of
// the same type.
func (h projectHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		related, err := h.projectRepo.FindRelated(project.Type, project.ID, 3)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find related", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"project":          project,
			"related_projects": related,
		})
	}
}

// getAllProjects retrieves every project for the admin interface, including
// non-featured ones.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

func (h projectHandler) validateProject(project *models.Project) *errs.ApiErr {
	if project.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if project.Slug == "" {
		project.Slug = services.Slugify(project.Title)
	}
	if project.Type == "" {
		project.Type = models.ProjectTypeWebApp
	} else if !project.Type.Valid() {
		return errs.NewValidationError("project_type", "unknown project type")
	}
	if project.Status == "" {
		project.Status = models.StatusCompleted
	} else if !project.Status.Valid() {
		return errs.NewValidationError("status", "unknown project status")
	}
	return nil
}

// createProject creates a new project. A duplicate slug is a hard 409, never
// a silent merge.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if validationErr := h.validateProject(&project); validationErr != nil {
			h.responder.WriteError(w, validationErr)
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindBySlug(project.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject updates an existing project addressed by slug.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		existing, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if validationErr := h.validateProject(&project); validationErr != nil {
			h.responder.WriteError(w, validationErr)
			return
		}

		// Keep identity and creation time; everything else comes from the payload
		project.ID = existing.ID
		project.CreatedAt = existing.CreatedAt

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(existing.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project by slug.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		existing, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(existing.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// uploadProjectImage stores a project image under MEDIA_ROOT/projects/ and
// downscales it to fit the 800x600 bounding box, preserving aspect ratio.
func (h projectHandler) uploadProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("image", "image file is required"))
			return
		}
		defer file.Close()

		ext := filepath.Ext(header.Filename)
		if ext == "" {
			ext = ".png"
		}

		dir := filepath.Join(h.mediaRoot, "projects")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to prepare media directory"))
			return
		}

		dst := filepath.Join(dir, project.Slug+ext)
		out, err := os.Create(dst)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to store image"))
			return
		}
		if _, err := io.Copy(out, file); err != nil {
			out.Close()
			os.Remove(dst)
			h.responder.WriteError(w, errs.NewInternalError("failed to store image"))
			return
		}
		out.Close()

		if err := services.FitImage(dst, services.MaxImageWidth, services.MaxImageHeight); err != nil {
			os.Remove(dst)
			h.responder.WriteError(w, errs.NewValidationError("image", "file is not a decodable image"))
			return
		}

		project.Image = filepath.ToSlash(filepath.Join("projects", project.Slug+ext))
		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}
