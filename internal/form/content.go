package form

import "github.com/goliatone/go-biolink/internal/schema"

// ContentState is the live, editable data object one wizard session owns.
// Keys are root field names; value shapes follow each field's kind. A fresh
// state carries only the config version marker.
type ContentState map[string]any

// NewContentState creates the empty state stamped with the current config
// version. The wizard creates one per theme selection and discards it on
// theme switch.
func NewContentState() ContentState {
	return ContentState{schema.ConfigVersionKey: schema.ConfigVersionV1}
}

// Clone deep-copies the state. Normalization and preview work on clones so
// the editable state is never corrupted by a downstream pass.
func (c ContentState) Clone() ContentState {
	if c == nil {
		return nil
	}
	return ContentState(cloneMap(map[string]any(c)))
}

// AsMap exposes the state as a plain map for collaborators (normalizer,
// renderer, persistence).
func (c ContentState) AsMap() map[string]any {
	return map[string]any(c)
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneSlice(in []any) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	for i, value := range in {
		out[i] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		return cloneSlice(typed)
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	default:
		return value
	}
}
