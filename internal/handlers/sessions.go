package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"client-intake-backend/internal/middleware"
	"client-intake-backend/internal/models"
	"client-intake-backend/internal/session"
)

const (
	ClientCookie       = "intake_client"
	clientCookieMaxAge = 365 * 24 * 60 * 60
)

type SessionsHandler struct {
	store        *session.Store
	tokens       *middleware.Tokens
	secureCookie bool
	logger       *slog.Logger
}

func NewSessionsHandler(store *session.Store, tokens *middleware.Tokens, secureCookie bool, logger *slog.Logger) *SessionsHandler {
	return &SessionsHandler{
		store:        store,
		tokens:       tokens,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// CreateSession godoc
// @Summary     Start the intake wizard
// @Description Creates a wizard session positioned on step 1 and returns its bearer token.
// @Description The long-lived intake_client cookie identifies the browser for rate limiting.
// @Tags        sessions
// @Produce     json
// @Success     201 {object} models.SessionResponse
// @Failure     429 {object} models.ErrorResponse
// @Router      /sessions [post]
func (h *SessionsHandler) CreateSession(c *gin.Context) {
	clientID, err := c.Cookie(ClientCookie)
	if err != nil || uuid.Validate(clientID) != nil {
		clientID = uuid.NewString()
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ClientCookie, clientID, clientCookieMaxAge, "/", "", h.secureCookie, true)

	sess, err := h.store.Create(clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(sess.ID, clientID, sess.ExpiresAt)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		State:     sess.Wizard.State(),
	})
}
