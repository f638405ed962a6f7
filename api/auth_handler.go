package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bikalpokharel/portfolio-backend/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	username     string
	passwordHash string
	jwtSecret    []byte
}

func newAuthHandler(username, passwordHash, jwtSecret string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		username:     username,
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the admin credentials against the configured bcrypt hash and
// issues a 24h HS256 bearer token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.passwordHash == "" || len(h.jwtSecret) == 0 {
			h.responder.WriteError(w, errs.NewInternalError("admin login is not configured"))
			return
		}

		var request loginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if request.Username != h.username {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(request.Password)); err != nil {
			h.logger.Warn().Str("remote_user", request.Username).Msg("Failed admin login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": request.Username,
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(24 * time.Hour).Unix(),
		})

		signed, err := token.SignedString(h.jwtSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to sign token"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": signed})
	}
}
