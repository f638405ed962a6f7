package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/bikalpokharel/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder    Responder
	logger       zerolog.Logger
	contactRepo  *database.ContactRepo
	configSource *siteConfigSource
	mailer       services.EmailSender
}

func newContactHandler(contactRepo *database.ContactRepo, configSource *siteConfigSource,
	mailer services.EmailSender) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		contactRepo:  contactRepo,
		configSource: configSource,
		mailer:       mailer,
	}
}

type contactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// contactPage serves the data the contact form page needs.
func (h contactHandler) contactPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := h.configSource.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site configuration", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"config": config})
	}
}

func parseContactSubmission(r *http.Request) (contactSubmission, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var submission contactSubmission
		err := json.NewDecoder(r.Body).Decode(&submission)
		return submission, err
	}

	if err := r.ParseForm(); err != nil {
		return contactSubmission{}, err
	}
	return contactSubmission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}, nil
}

// submitContact validates the four required fields, persists the message,
// then attempts a best-effort email notification. The database write is
// durable before the email is tried; a send failure is logged, never
// surfaced, and never rolls the write back.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission, err := parseContactSubmission(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		submission.Name = strings.TrimSpace(submission.Name)
		submission.Email = strings.TrimSpace(submission.Email)
		submission.Subject = strings.TrimSpace(submission.Subject)
		submission.Message = strings.TrimSpace(submission.Message)

		for _, field := range []struct {
			name  string
			value string
		}{
			{"name", submission.Name},
			{"email", submission.Email},
			{"subject", submission.Subject},
			{"message", submission.Message},
		} {
			if field.value == "" {
				h.responder.WriteValidationError(w, field.name, "Please fill in all fields.")
				return
			}
		}

		contact := &models.Contact{
			Name:    submission.Name,
			Email:   submission.Email,
			Subject: submission.Subject,
			Message: submission.Message,
		}
		if err := h.contactRepo.Add(contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		// The row is durable from here on; everything below is best effort.
		message := "Thank you for your message! I'll get back to you soon."
		if err := h.notify(submission); err != nil {
			h.logger.Error().Err(err).Msg("Email sending failed")
			message = "Message saved! I'll get back to you soon."
		} else {
			h.logger.Info().Str("email", submission.Email).Msg("Contact form submitted")
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": message,
		})
	}
}

func (h contactHandler) notify(submission contactSubmission) error {
	config, err := h.configSource.Get()
	if err != nil {
		return fmt.Errorf("load site configuration: %w", err)
	}

	body := fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Subject: %s

Message:
%s
`, submission.Name, submission.Email, submission.Subject, submission.Message)

	return h.mailer.Send("Portfolio Contact: "+submission.Subject, body, []string{config.Email})
}

// getAllContacts lists every received message for the admin inbox.
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		unread, err := h.contactRepo.CountUnread()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count unread", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"contacts": contacts,
			"total":    len(contacts),
			"unread":   unread,
		})
	}
}

// markContactRead flips the read flag of one message.
func (h contactHandler) markContactRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		updated, err := h.contactRepo.MarkRead(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact message", err))
			return
		}
		if !updated {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
