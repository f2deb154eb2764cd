package form

import (
	"github.com/goliatone/go-biolink/internal/schema"
)

// Control describes one renderable form control derived from a field spec and
// the current content value. It carries presentation metadata and live
// constraint hints; it never blocks input.
type Control struct {
	Name        string
	Kind        schema.FieldKind
	Label       string
	Placeholder string
	HelperText  string
	Required    bool
	Options     []string
	Value       any

	// MaxLength/Remaining drive live character counters. Remaining is
	// negative once the user typed past the limit; the UI shows it, the
	// engine does not reject it.
	MaxLength int
	Remaining int
	Min       *float64
	Max       *float64

	// Array kinds: ItemTemplate describes the controls a fresh item gets,
	// Items holds one control list per existing element. MaxItems and
	// CanAppend let the UI disable its add button at the cap.
	MaxItems     int
	CanAppend    bool
	ItemTemplate []Control
	Items        [][]Control

	// Object kinds: one control per nested field.
	Fields []Control
}

// Controls derives the control tree for the engine's schema and current
// state. An unknown field kind anywhere in the schema fails the whole
// derivation; the schema is broken, not the data.
func (e *Engine) Controls() ([]Control, error) {
	return buildControls(e.fields, map[string]any(e.content), e.enforceMaxItems)
}

func buildControls(fields []schema.FieldSpec, values map[string]any, enforceMaxItems bool) ([]Control, error) {
	out := make([]Control, 0, len(fields))
	for _, field := range fields {
		control, err := buildControl(field, values[field.Name], enforceMaxItems)
		if err != nil {
			return nil, err
		}
		out = append(out, control)
	}
	return out, nil
}

func buildControl(field schema.FieldSpec, value any, enforceMaxItems bool) (Control, error) {
	if !field.Kind.Known() {
		return Control{}, &schema.UnknownKindError{Name: field.Name, Kind: field.Kind}
	}

	control := Control{
		Name:        field.Name,
		Kind:        field.Kind,
		Label:       field.Label,
		Placeholder: field.Placeholder,
		HelperText:  field.HelperText,
		Required:    field.Required,
		Options:     field.Options,
		Value:       value,
		MaxLength:   field.MaxLength,
		Min:         field.Min,
		Max:         field.Max,
		MaxItems:    field.MaxItems,
	}

	switch field.Kind {
	case schema.KindArray:
		template, err := buildControls(field.ItemFields, nil, enforceMaxItems)
		if err != nil {
			return Control{}, err
		}
		control.ItemTemplate = template

		items, _ := value.([]any)
		control.Items = make([][]Control, 0, len(items))
		for _, raw := range items {
			itemValues, _ := raw.(map[string]any)
			itemControls, err := buildControls(field.ItemFields, itemValues, enforceMaxItems)
			if err != nil {
				return Control{}, err
			}
			control.Items = append(control.Items, itemControls)
		}
		control.CanAppend = !enforceMaxItems || field.MaxItems == 0 || len(items) < field.MaxItems
	case schema.KindObject:
		nestedValues, _ := value.(map[string]any)
		nested, err := buildControls(field.Fields, nestedValues, enforceMaxItems)
		if err != nil {
			return Control{}, err
		}
		control.Fields = nested
	default:
		if field.MaxLength > 0 {
			if text, ok := value.(string); ok {
				control.Remaining = field.MaxLength - len([]rune(text))
			} else {
				control.Remaining = field.MaxLength
			}
		}
	}

	return control, nil
}
