package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"client-intake-backend/internal/intake"
	"client-intake-backend/internal/middleware"
	"client-intake-backend/internal/models"
	"client-intake-backend/internal/ratelimit"
	"client-intake-backend/internal/services"
	"client-intake-backend/internal/session"
	"client-intake-backend/internal/wizard"
)

// Submitter relays a completed form.
type Submitter interface {
	Submit(ctx context.Context, clientID string, form models.FormState) (services.Result, error)
}

type WizardHandler struct {
	store          *session.Store
	intake         *intake.Intake
	submitter      Submitter
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewWizardHandler(store *session.Store, in *intake.Intake, submitter Submitter, maxUploadBytes int64, logger *slog.Logger) *WizardHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 32 << 20
	}
	return &WizardHandler{
		store:          store,
		intake:         in,
		submitter:      submitter,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDKey)
}

func clientID(c *gin.Context) string {
	return c.GetString(middleware.ClientIDKey)
}

func indexParam(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return i, true
}

func wizardResponse(w *wizard.Wizard) models.WizardResponse {
	return models.WizardResponse{State: w.State(), Form: w.Form}
}

// mutate applies fn to the session's wizard and writes the new state.
func (h *WizardHandler) mutate(c *gin.Context, fn func(w *wizard.Wizard) error) {
	sess, err := h.store.Update(sessionID(c), fn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(sess.Wizard))
}

// GetWizard godoc
// @Summary     Get wizard state
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	sess, err := h.store.Get(sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(sess.Wizard))
}

// UpdateFields godoc
// @Summary     Update form fields
// @Description Partial update: omitted fields are left unchanged.
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body models.FieldUpdateRequest true "Fields to update"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /wizard/fields [patch]
func (h *WizardHandler) UpdateFields(c *gin.Context) {
	var req models.FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.Update(req) })
}

// Retreat godoc
// @Summary     Go back one step
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /wizard/retreat [post]
func (h *WizardHandler) Retreat(c *gin.Context) {
	h.mutate(c, func(w *wizard.Wizard) error { return w.Retreat() })
}

// Advance godoc
// @Summary     Advance to the next step, or submit on the last step
// @Description Blocked with 422 when the current step is incomplete. On step 6 the form is
// @Description relayed: media uploads and emails run before the response, and the response is
// @Description the completion state regardless of delivery. 429 means the submitter must wait.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Success     201 {object} models.SubmitResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Router      /wizard/advance [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	id := sessionID(c)

	var outcome wizard.Outcome
	sess, err := h.store.Update(id, func(w *wizard.Wizard) error {
		var err error
		outcome, err = w.Advance()
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !outcome.Submit {
		c.JSON(http.StatusOK, wizardResponse(sess.Wizard))
		return
	}

	// Once started, a submission runs to the end even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	result, err := h.submitter.Submit(ctx, clientID(c), sess.Wizard.Form)
	if err != nil {
		if _, abortErr := h.store.Update(id, func(w *wizard.Wizard) error { return w.AbortSubmission() }); abortErr != nil {
			h.logger.Error("failed to reopen wizard after rejected submission", "error", abortErr)
		}
		var blocked *ratelimit.BlockedError
		if !errors.As(err, &blocked) {
			h.logger.Error("submission failed", "error", err)
		}
		respondError(c, err)
		return
	}

	// The relay has run, so the client always sees the completion state.
	done := sess.Wizard.Clone()
	if updated, err := h.store.Update(id, func(w *wizard.Wizard) error { return w.Complete() }); err != nil {
		h.logger.Error("failed to mark session complete after submission", "session_id", id, "error", err)
		_ = done.Complete()
	} else {
		done = updated.Wizard
	}

	c.JSON(http.StatusCreated, models.SubmitResponse{
		Status:      "complete",
		SubmittedAt: result.SubmittedAt,
		State:       done.State(),
	})
}

// AddService godoc
// @Summary     Add an empty service entry
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /wizard/services [post]
func (h *WizardHandler) AddService(c *gin.Context) {
	h.mutate(c, func(w *wizard.Wizard) error { return w.AddService() })
}

// UpdateService godoc
// @Summary     Set the text of a service entry
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       index path int true "Entry index"
// @Param       body body models.ServiceTextRequest true "Entry text"
// @Success     200 {object} models.WizardResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/services/{index} [put]
func (h *WizardHandler) UpdateService(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req models.ServiceTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.UpdateService(index, req.Text) })
}

// RemoveService godoc
// @Summary     Remove a service entry
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       index path int true "Entry index"
// @Success     200 {object} models.WizardResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/services/{index} [delete]
func (h *WizardHandler) RemoveService(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.RemoveService(index) })
}

// AddSocialLink godoc
// @Summary     Add an empty social link
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/social-links [post]
func (h *WizardHandler) AddSocialLink(c *gin.Context) {
	h.mutate(c, func(w *wizard.Wizard) error { return w.AddSocialLink() })
}

// UpdateSocialLink godoc
// @Summary     Set a social link
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       index path int true "Link index"
// @Param       body body models.SocialLinkRequest true "Link"
// @Success     200 {object} models.WizardResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/social-links/{index} [put]
func (h *WizardHandler) UpdateSocialLink(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	var req models.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.UpdateSocialLink(index, req.URL) })
}

// RemoveSocialLink godoc
// @Summary     Remove a social link
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       index path int true "Link index"
// @Success     200 {object} models.WizardResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/social-links/{index} [delete]
func (h *WizardHandler) RemoveSocialLink(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.RemoveSocialLink(index) })
}

// ToggleMood godoc
// @Summary     Select or deselect a mood
// @Description At most 3 moods; selecting a fourth is rejected and the selection is unchanged.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       mood path string true "Mood id"
// @Success     200 {object} models.WizardResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /wizard/moods/{mood}/toggle [post]
func (h *WizardHandler) ToggleMood(c *gin.Context) {
	mood := c.Param("mood")
	h.mutate(c, func(w *wizard.Wizard) error { return w.ToggleMood(mood) })
}

// ToggleContactMethod godoc
// @Summary     Select or deselect a contact method
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       method path string true "Contact method (email, phone)"
// @Success     200 {object} models.WizardResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /wizard/contact-methods/{method}/toggle [post]
func (h *WizardHandler) ToggleContactMethod(c *gin.Context) {
	method := c.Param("method")
	h.mutate(c, func(w *wizard.Wizard) error { return w.ToggleContactMethod(method) })
}
