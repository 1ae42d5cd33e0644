package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"client-intake-backend/internal/intake"
	"client-intake-backend/internal/models"
	"client-intake-backend/internal/ratelimit"
	"client-intake-backend/internal/session"
	"client-intake-backend/internal/wizard"
)

// respondError maps domain errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var stepErr *wizard.StepError
	var blocked *ratelimit.BlockedError

	switch {
	case errors.As(err, &stepErr):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "step incomplete",
			Message: stepErr.Error(),
			Fields:  stepErr.Fields,
		})
	case errors.As(err, &blocked):
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Error:   "submission limit reached",
			Message: fmt.Sprintf("You have already submitted the form. You can submit again in %d hours.", blocked.RemainingHours),
		})
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found", Message: err.Error()})
	case errors.Is(err, wizard.ErrWrongPhase):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "wizard is not editable", Message: err.Error()})
	case errors.Is(err, wizard.ErrMoodLimit):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "mood limit", Message: "You can select up to 3 moods."})
	case errors.Is(err, wizard.ErrServiceLimit):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "item limit", Message: "You can add up to 8 items."})
	case errors.Is(err, wizard.ErrFileLimit), errors.Is(err, intake.ErrTooManyFiles):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "file limit", Message: "You can upload up to 15 files in total."})
	case errors.Is(err, wizard.ErrIndexOutOfRange):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "entry not found", Message: err.Error()})
	case errors.Is(err, wizard.ErrUnknownOption):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown option", Message: err.Error()})
	case errors.Is(err, intake.ErrNothingToRead):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no files uploaded", Message: "please provide files in the \"files\" field"})
	case errors.Is(err, intake.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "file too large", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Message: err.Error()})
	}
}
