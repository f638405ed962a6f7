package api

import (
	"encoding/json"
	"net/http"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/bikalpokharel/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type configurationHandler struct {
	responder    Responder
	logger       zerolog.Logger
	configSource *siteConfigSource
	configRepo   *database.SiteConfigurationRepo
}

func newConfigurationHandler(configSource *siteConfigSource, configRepo *database.SiteConfigurationRepo) configurationHandler {
	logger := log.With().Str("handlerName", "configurationHandler").Logger()

	return configurationHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		configSource: configSource,
		configRepo:   configRepo,
	}
}

func (h configurationHandler) getConfiguration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := h.configSource.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site configuration", err))
			return
		}

		h.responder.WriteJSON(w, config)
	}
}

// updateConfiguration overwrites the singleton row. The repository pins the
// fixed primary key, so this can only ever update, never create a second row.
func (h configurationHandler) updateConfiguration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var config models.SiteConfiguration
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if config.SiteName == "" {
			h.responder.WriteError(w, errs.NewValidationError("site_name", "site_name is required"))
			return
		}
		if config.Email == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email is required"))
			return
		}

		if err := h.configRepo.Update(&config); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "site configuration", err))
			return
		}

		h.configSource.Invalidate()
		h.responder.WriteJSON(w, config)
	}
}
