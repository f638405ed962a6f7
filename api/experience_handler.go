package api

import (
	"encoding/json"
	"net/http"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

func (h experienceHandler) validateExperience(experience *models.Experience) *errs.ApiErr {
	if experience.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if experience.Company == "" {
		return errs.NewValidationError("company", "company is required")
	}
	if experience.StartDate.IsZero() {
		return errs.NewValidationError("start_date", "start_date is required")
	}
	if experience.Type == "" {
		experience.Type = models.ExperienceWork
	} else if !experience.Type.Valid() {
		return errs.NewValidationError("experience_type", "unknown experience type")
	}
	return nil
}

func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"experiences": experiences,
			"total":       len(experiences),
		})
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if validationErr := h.validateExperience(&experience); validationErr != nil {
			h.responder.WriteError(w, validationErr)
			return
		}

		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		existing, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if validationErr := h.validateExperience(&experience); validationErr != nil {
			h.responder.WriteError(w, validationErr)
			return
		}

		experience.ID = experienceID
		if err := h.experienceRepo.Update(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience deleted successfully",
		})
	}
}
