package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStepInvalid     = errors.New("wizard: current step is incomplete")
	ErrWrongPhase      = errors.New("wizard: operation not allowed in current phase")
	ErrMoodLimit       = errors.New("wizard: at most 3 moods can be selected")
	ErrServiceLimit    = errors.New("wizard: at most 8 entries can be added")
	ErrFileLimit       = errors.New("wizard: at most 15 files can be attached in total")
	ErrIndexOutOfRange = errors.New("wizard: index out of range")
	ErrUnknownOption   = errors.New("wizard: unknown option")
)

// StepError reports which fields block the active step.
type StepError struct {
	Step   int
	Fields []string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d is incomplete: %s", e.Step, strings.Join(e.Fields, ", "))
}

func (e *StepError) Is(target error) bool {
	return target == ErrStepInvalid
}
