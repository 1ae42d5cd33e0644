package wizard

import (
	"client-intake-backend/internal/models"
)

func (w *Wizard) AddService() error {
	if err := w.editable(); err != nil {
		return err
	}
	if len(w.Form.Services) >= MaxServices {
		return ErrServiceLimit
	}
	w.Form.Services = append(w.Form.Services, models.ServiceItem{})
	return nil
}

func (w *Wizard) UpdateService(index int, text string) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.Services) {
		return ErrIndexOutOfRange
	}
	w.Form.Services[index].Text = text
	return nil
}

func (w *Wizard) RemoveService(index int) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.Services) {
		return ErrIndexOutOfRange
	}
	w.Form.Services = append(w.Form.Services[:index], w.Form.Services[index+1:]...)
	return nil
}

func (w *Wizard) AddSocialLink() error {
	if err := w.editable(); err != nil {
		return err
	}
	w.Form.SocialLinks = append(w.Form.SocialLinks, "")
	return nil
}

func (w *Wizard) UpdateSocialLink(index int, value string) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.SocialLinks) {
		return ErrIndexOutOfRange
	}
	w.Form.SocialLinks[index] = value
	return nil
}

func (w *Wizard) RemoveSocialLink(index int) error {
	if err := w.editable(); err != nil {
		return err
	}
	if index < 0 || index >= len(w.Form.SocialLinks) {
		return ErrIndexOutOfRange
	}
	w.Form.SocialLinks = append(w.Form.SocialLinks[:index], w.Form.SocialLinks[index+1:]...)
	return nil
}

// ToggleMood selects or deselects a mood. Selecting a fourth mood fails and
// leaves the selection as it was.
func (w *Wizard) ToggleMood(id string) error {
	if err := w.editable(); err != nil {
		return err
	}
	if _, ok := models.LookupOption(models.MoodOptions, id); !ok {
		return ErrUnknownOption
	}
	if i := indexOf(w.Form.Moods, id); i >= 0 {
		w.Form.Moods = append(w.Form.Moods[:i], w.Form.Moods[i+1:]...)
		return nil
	}
	if len(w.Form.Moods) >= MaxMoods {
		return ErrMoodLimit
	}
	w.Form.Moods = append(w.Form.Moods, id)
	return nil
}

func (w *Wizard) ToggleContactMethod(id string) error {
	if err := w.editable(); err != nil {
		return err
	}
	if _, ok := models.LookupOption(models.ContactMethodOptions, id); !ok {
		return ErrUnknownOption
	}
	if i := indexOf(w.Form.ContactMethods, id); i >= 0 {
		w.Form.ContactMethods = append(w.Form.ContactMethods[:i], w.Form.ContactMethods[i+1:]...)
		return nil
	}
	w.Form.ContactMethods = append(w.Form.ContactMethods, id)
	return nil
}

func indexOf(values []string, v string) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
