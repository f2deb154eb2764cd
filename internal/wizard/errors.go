package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrAuthRequired       = errors.New("wizard: authenticated user required")
	ErrInvalidTransition  = errors.New("wizard: transition not allowed")
	ErrCategoryRequired   = errors.New("wizard: category not selected")
	ErrThemeRequired      = errors.New("wizard: theme not selected")
	ErrThemeNotInCategory = errors.New("wizard: theme does not belong to selected category")
	ErrContentIncomplete  = errors.New("wizard: required content missing")
	ErrSessionFinished    = errors.New("wizard: session already published")
)

// TransitionError reports an operation attempted at the wrong step.
type TransitionError struct {
	Step   Step
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s at step %s", ErrInvalidTransition.Error(), e.Action, e.Step)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// GateError carries the per-field failures that keep a session out of the
// preview step. Fields is keyed by field name; each message names the field
// by its human label so the UI can show it verbatim.
type GateError struct {
	Fields validation.Errors
}

func (e *GateError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrContentIncomplete.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %v", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s (%s)", ErrContentIncomplete.Error(), strings.Join(parts, "; "))
}

func (e *GateError) Unwrap() error {
	return ErrContentIncomplete
}
