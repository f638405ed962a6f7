package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/bikalpokharel/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type webhookHandler struct {
	responder Responder
	logger    zerolog.Logger
	syncer    services.RepoSyncer
	secret    string
}

func newWebhookHandler(syncer services.RepoSyncer, secret string) webhookHandler {
	logger := log.With().Str("handlerName", "webhookHandler").Logger()

	return webhookHandler{
		responder: NewResponder(logger),
		logger:    logger,
		syncer:    syncer,
		secret:    secret,
	}
}

// webhookPayload covers both event shapes the handler consumes: repository
// events carry an action, push events only the repository.
type webhookPayload struct {
	Action     string              `json:"action"`
	Repository services.Repository `json:"repository"`
}

// verifyWebhookSignature checks the sha256=<hex> HMAC-SHA-256 digest of the
// raw body. The comparison is constant time.
func verifyWebhookSignature(body []byte, signature, secret string) bool {
	if !strings.HasPrefix(signature, "sha256=") {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expected))
}

// handleGitHubWebhook keeps the portfolio in sync with the GitHub account.
// Signature verification (when a secret is configured) happens before any
// payload processing; unknown events are acknowledged without action.
func (h webhookHandler) handleGitHubWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		if h.secret != "" {
			signature := r.Header.Get("X-Hub-Signature-256")
			if !verifyWebhookSignature(body, signature, h.secret) {
				h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("Webhook signature mismatch")
				h.responder.WriteError(w, errs.NewUnauthorizedError("invalid webhook signature"))
				return
			}
		}

		var payload webhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid JSON"))
			return
		}

		eventType := r.Header.Get("X-GitHub-Event")
		switch eventType {
		case "repository":
			err = h.handleRepositoryEvent(payload)
		case "push":
			err = h.syncer.HandlePush(payload.Repository)
		default:
			// Unknown events are accepted with no action taken
			h.logger.Debug().Str("event", eventType).Msg("Ignoring webhook event")
		}

		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}

func (h webhookHandler) handleRepositoryEvent(payload webhookPayload) error {
	switch payload.Action {
	case "created", "publicized":
		return h.syncer.HandleCreated(payload.Repository)
	case "deleted":
		return h.syncer.HandleDeleted(payload.Repository)
	}
	return nil
}
