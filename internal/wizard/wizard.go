// Package wizard implements the six-step intake flow as an explicit state machine.
//
// A Wizard is a plain value: callers load it from the session store, apply one
// operation and store it back. Phases move linearly through steps 1..6, then to
// submitting and complete. Advance is guarded by the active step's predicate;
// Retreat is a no-op on the first step.
package wizard

import (
	"client-intake-backend/internal/models"
)

type Phase string

const (
	PhaseStep       Phase = "step"
	PhaseSubmitting Phase = "submitting"
	PhaseComplete   Phase = "complete"
)

const (
	FirstStep   = 1
	TotalSteps  = 6
	MaxFiles    = 15
	MaxPhotos   = 10
	MaxMoods    = 3
	MaxServices = 8
)

type Wizard struct {
	Phase Phase            `json:"phase"`
	Step  int              `json:"step"`
	Form  models.FormState `json:"form"`
}

// Outcome describes the effect of Advance.
type Outcome struct {
	// Submit is set when Advance was called on the last step: the wizard is now
	// submitting and the caller must run the relay.
	Submit bool
	Step   int
}

// New returns a wizard positioned on the first step with an empty form.
func New() *Wizard {
	return &Wizard{Phase: PhaseStep, Step: FirstStep}
}

// Clone returns a deep copy.
func (w *Wizard) Clone() *Wizard {
	c := *w
	c.Form = w.Form.Clone()
	return &c
}

func (w *Wizard) editable() error {
	if w.Phase != PhaseStep {
		return ErrWrongPhase
	}
	return nil
}

// Advance moves to the next step when the active step is valid. On the last
// step it switches to the submitting phase instead.
func (w *Wizard) Advance() (Outcome, error) {
	if err := w.editable(); err != nil {
		return Outcome{}, err
	}
	if missing := MissingFields(w.Step, &w.Form); len(missing) > 0 {
		return Outcome{Step: w.Step}, &StepError{Step: w.Step, Fields: missing}
	}
	if w.Step < TotalSteps {
		w.Step++
		return Outcome{Step: w.Step}, nil
	}
	w.Phase = PhaseSubmitting
	return Outcome{Submit: true, Step: w.Step}, nil
}

// Retreat moves one step back. It does nothing on the first step.
func (w *Wizard) Retreat() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Step > FirstStep {
		w.Step--
	}
	return nil
}

// AbortSubmission returns a submitting wizard to the last step with the form intact.
func (w *Wizard) AbortSubmission() error {
	if w.Phase != PhaseSubmitting {
		return ErrWrongPhase
	}
	w.Phase = PhaseStep
	w.Step = TotalSteps
	return nil
}

// Complete marks a submitting wizard as finished.
func (w *Wizard) Complete() error {
	if w.Phase != PhaseSubmitting {
		return ErrWrongPhase
	}
	w.Phase = PhaseComplete
	return nil
}

// Update applies a partial update of the scalar fields.
func (w *Wizard) Update(u models.FieldUpdateRequest) error {
	if err := w.editable(); err != nil {
		return err
	}
	f := &w.Form
	setString(&f.Honeypot, u.Honeypot)
	setString(&f.Name, u.Name)
	setString(&f.Email, u.Email)
	setString(&f.Phone, u.Phone)
	setString(&f.Description, u.Description)
	setString(&f.DontWant, u.DontWant)
	setString(&f.AdditionalComments, u.AdditionalComments)
	if u.PresentationType != nil {
		if *u.PresentationType != "" {
			if _, ok := models.LookupOption(models.PresentationOptions, *u.PresentationType); !ok {
				return ErrUnknownOption
			}
		}
		f.PresentationType = *u.PresentationType
	}
	if u.Goal != nil {
		if *u.Goal != "" {
			if _, ok := models.LookupOption(models.GoalOptions, *u.Goal); !ok {
				return ErrUnknownOption
			}
		}
		f.Goal = *u.Goal
	}
	if u.GDPRConsent != nil {
		f.GDPRConsent = *u.GDPRConsent
	}
	return nil
}

// State summarises the wizard for API responses.
func (w *Wizard) State() models.WizardState {
	return models.WizardState{
		Phase:      string(w.Phase),
		Step:       w.Step,
		TotalSteps: TotalSteps,
		StepValid:  w.Phase == PhaseStep && StepValid(w.Step, &w.Form),
		Prompts:    Prompts(&w.Form),
		FileCount:  w.Form.FileCount(),
		MaxFiles:   MaxFiles,
	}
}

// RemainingFiles is how many more files may be attached.
func (w *Wizard) RemainingFiles() int {
	n := MaxFiles - w.Form.FileCount()
	if n < 0 {
		return 0
	}
	return n
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
