package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"client-intake-backend/internal/imaging"
	"client-intake-backend/internal/intake"
	"client-intake-backend/internal/models"
	"client-intake-backend/internal/wizard"
)

const (
	SlotLogo           = "logo"
	SlotPhotos         = "photos"
	SlotStyleReference = "style_reference"
)

var errUnknownSlot = errors.New("unknown file slot")

// readUploads parses the multipart "files" field.
func (h *WizardHandler) readUploads(c *gin.Context) ([]intake.Upload, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to parse multipart form", Message: err.Error()})
		return nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		respondError(c, intake.ErrNothingToRead)
		return nil, false
	}
	return intake.FromFileHeaders(files), true
}

// remainingFor reports how many files the slot can take right now. Single
// file slots that are already filled are replaced, so they never need more
// than the space they occupy.
func remainingFor(w *wizard.Wizard, slot string, serviceIndex int) (int, error) {
	remaining := w.RemainingFiles()
	switch slot {
	case SlotPhotos:
		return remaining, nil
	case SlotLogo:
		if w.Form.Logo != nil {
			remaining++
		}
	case SlotStyleReference:
		if w.Form.StyleReference != nil {
			remaining++
		}
	case "service":
		if serviceIndex < 0 || serviceIndex >= len(w.Form.Services) {
			return 0, wizard.ErrIndexOutOfRange
		}
		if w.Form.Services[serviceIndex].Image != nil {
			remaining++
		}
	default:
		return 0, errUnknownSlot
	}
	return min(remaining, 1), nil
}

// UploadFiles godoc
// @Summary     Attach files to a slot
// @Description Files are read inline. Photos accept several files; logo and style_reference keep one.
// @Description A batch that exceeds the 15 file total is rejected whole. Photos beyond 10 are dropped.
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       slot  path     string true "logo, photos or style_reference"
// @Param       files formData file   true "Image files"
// @Success     200 {object} models.FileUploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /wizard/files/{slot} [post]
func (h *WizardHandler) UploadFiles(c *gin.Context) {
	h.upload(c, c.Param("slot"), -1)
}

// UploadServiceImage godoc
// @Summary     Attach an image to a service entry
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       index path     int  true "Entry index"
// @Param       files formData file true "Image file"
// @Success     200 {object} models.FileUploadResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /wizard/services/{index}/image [post]
func (h *WizardHandler) UploadServiceImage(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.upload(c, "service", index)
}

func (h *WizardHandler) upload(c *gin.Context, slot string, serviceIndex int) {
	id := sessionID(c)
	sess, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	remaining, err := remainingFor(sess.Wizard, slot, serviceIndex)
	if errors.Is(err, errUnknownSlot) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown slot", Message: fmt.Sprintf("no file slot named %q", slot)})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	uploads, ok := h.readUploads(c)
	if !ok {
		return
	}
	if slot != SlotPhotos && len(uploads) > 1 {
		uploads = uploads[:1]
	}

	assets, rejected, err := h.intake.Process(c.Request.Context(), uploads, remaining)
	if err != nil {
		respondError(c, err)
		return
	}

	var notices []string
	if len(assets) > 0 {
		sess, err = h.store.Update(id, func(w *wizard.Wizard) error {
			switch slot {
			case SlotLogo:
				return w.AttachLogo(assets[0])
			case SlotStyleReference:
				return w.AttachStyleReference(assets[0])
			case SlotPhotos:
				dropped, err := w.AttachPhotos(assets)
				if dropped > 0 {
					notices = append(notices, fmt.Sprintf("Only %d photos are kept; %d were not added.", wizard.MaxPhotos, dropped))
					assets = assets[:len(assets)-dropped]
				}
				return err
			default:
				return w.SetServiceImage(serviceIndex, assets[0])
			}
		})
		if err != nil {
			respondError(c, err)
			return
		}
	}

	resp := models.FileUploadResponse{
		Slot:    slot,
		Files:   make([]models.FileInfo, 0, len(assets)),
		State:   sess.Wizard.State(),
		Notices: notices,
	}
	for _, a := range assets {
		resp.Files = append(resp.Files, models.FileInfo{Filename: a.Name, Size: a.Size, Type: a.Type})
	}
	for _, r := range rejected {
		resp.Errors = append(resp.Errors, models.FileErrorInfo{Filename: r.Name, Error: fileErrorMessage(r.Err)})
	}

	c.JSON(http.StatusOK, resp)
}

func fileErrorMessage(err error) string {
	switch {
	case errors.Is(err, intake.ErrFileTooLarge):
		return "File is too large. Maximum size is 1MB."
	case errors.Is(err, intake.ErrNotAnImage), errors.Is(err, imaging.ErrDecode):
		return "Only image files are accepted."
	case errors.Is(err, imaging.ErrTooManyPixels):
		return "Image dimensions are too large."
	default:
		return err.Error()
	}
}

// RemoveLogo godoc
// @Summary     Remove the logo
// @Tags        files
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/files/logo [delete]
func (h *WizardHandler) RemoveLogo(c *gin.Context) {
	h.mutate(c, func(w *wizard.Wizard) error { return w.RemoveLogo() })
}

// RemoveStyleReference godoc
// @Summary     Remove the style reference image
// @Tags        files
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardResponse
// @Router      /wizard/files/style_reference [delete]
func (h *WizardHandler) RemoveStyleReference(c *gin.Context) {
	h.mutate(c, func(w *wizard.Wizard) error { return w.RemoveStyleReference() })
}

// RemovePhoto godoc
// @Summary     Remove a photo
// @Tags        files
// @Produce     json
// @Security    Bearer
// @Param       index path int true "Photo index"
// @Success     200 {object} models.WizardResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/files/photos/{index} [delete]
func (h *WizardHandler) RemovePhoto(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.RemovePhoto(index) })
}

// ClearServiceImage godoc
// @Summary     Remove the image of a service entry
// @Tags        files
// @Produce     json
// @Security    Bearer
// @Param       index path int true "Entry index"
// @Success     200 {object} models.WizardResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/services/{index}/image [delete]
func (h *WizardHandler) ClearServiceImage(c *gin.Context) {
	index, ok := indexParam(c, "index")
	if !ok {
		return
	}
	h.mutate(c, func(w *wizard.Wizard) error { return w.ClearServiceImage(index) })
}
