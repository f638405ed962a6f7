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

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
	}
}

func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.testimonialRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"testimonials": testimonials,
			"total":        len(testimonials),
		})
	}
}

func (h testimonialHandler) createTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var testimonial models.Testimonial
		if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if testimonial.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if testimonial.Content == "" {
			h.responder.WriteError(w, errs.NewValidationError("content", "content is required"))
			return
		}
		if testimonial.Rating == 0 {
			testimonial.Rating = 5
		}

		if err := h.testimonialRepo.Add(&testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "testimonial", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, testimonial)
	}
}

func (h testimonialHandler) updateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid testimonialID"))
			return
		}

		existing, err := h.testimonialRepo.FindByID(testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "testimonial", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("testimonial not found"))
			return
		}

		var testimonial models.Testimonial
		if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		testimonial.ID = testimonialID
		if err := h.testimonialRepo.Update(&testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, testimonial)
	}
}

func (h testimonialHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid testimonialID"))
			return
		}

		if err := h.testimonialRepo.Delete(testimonialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "testimonial deleted successfully",
		})
	}
}
