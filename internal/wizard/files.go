package wizard

import (
	"client-intake-backend/internal/models"
)

// AttachLogo sets or replaces the logo. Replacing does not count twice.
func (w *Wizard) AttachLogo(a models.FileAsset) error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Form.Logo == nil && w.RemainingFiles() < 1 {
		return ErrFileLimit
	}
	w.Form.Logo = &a
	return nil
}

func (w *Wizard) RemoveLogo() error {
	if err := w.editable(); err != nil {
		return err
	}
	w.Form.Logo = nil
	return nil
}

func (w *Wizard) AttachStyleReference(a models.FileAsset) error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Form.StyleReference == nil && w.RemainingFiles() < 1 {
		return ErrFileLimit
	}
	w.Form.StyleReference = &a
	return nil
}

func (w *Wizard) RemoveStyleReference() error {
	if err := w.editable(); err != nil {
		return err
	}
	w.Form.StyleReference = nil
	return nil
}

// AttachPhotos appends photos. The batch is rejected as a whole when it would
// exceed the aggregate file cap; otherwise the list is cut to MaxPhotos and
// the number of dropped photos is returned.
func (w *Wizard) AttachPhotos(assets []models.FileAsset) (dropped int, err error) {
	if err := w.editable(); err != nil {
		return 0, err
	}
	if len(assets) > w.RemainingFiles() {
		return 0, ErrFileLimit
	}
	photos := append(append([]models.FileAsset(nil), w.Form.Photos...), assets...)
	if len(photos) > MaxPhotos {
		dropped = len(photos) - MaxPhotos
		photos = photos[:MaxPhotos]
	}
	w.Form.Photos = photos
	return dropped, nil
}

func (w *Wizard) RemovePhoto(index int) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.Photos) {
		return ErrIndexOutOfRange
	}
	w.Form.Photos = append(w.Form.Photos[:index], w.Form.Photos[index+1:]...)
	return nil
}

func (w *Wizard) SetServiceImage(index int, a models.FileAsset) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.Services) {
		return ErrIndexOutOfRange
	}
	if w.Form.Services[index].Image == nil && w.RemainingFiles() < 1 {
		return ErrFileLimit
	}
	w.Form.Services[index].Image = &a
	return nil
}

func (w *Wizard) ClearServiceImage(index int) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.Services) {
		return ErrIndexOutOfRange
	}
	w.Form.Services[index].Image = nil
	return nil
}
