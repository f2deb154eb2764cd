package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-biolink/internal/form"
	"github.com/goliatone/go-biolink/internal/schema"
)

var ErrShapeMismatch = errors.New("normalize: value shape contradicts field kind")

// ShapeError reports a runtime value whose shape contradicts its declared
// kind. It signals an engine/schema contract violation upstream, not bad user
// input; callers fail loudly rather than coerce.
type ShapeError struct {
	Path string
	Kind schema.FieldKind
	Got  any
}

func (e *ShapeError) Error() string {
	if e == nil {
		return ErrShapeMismatch.Error()
	}
	return fmt.Sprintf("%s: %s declared %s, holds %T", ErrShapeMismatch.Error(), e.Path, e.Kind, e.Got)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// Content walks the field schema depth-first, mirrored over the content
// state, and coerces raw editing values into the shapes renderers expect:
// comma-separated tag strings become trimmed ordered slices, recursively
// inside array items and object fields. Every other kind passes through.
//
// The input is never mutated; preview and publish each normalize
// independently and must agree, so the transform is idempotent:
// Content(spec, Content(spec, x)) == Content(spec, x).
func Content(fields []schema.FieldSpec, content form.ContentState) (form.ContentState, error) {
	out := content.Clone()
	if out == nil {
		out = form.ContentState{}
	}
	if err := normalizeLevel(fields, out.AsMap(), ""); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeLevel(fields []schema.FieldSpec, values map[string]any, path string) error {
	for _, field := range fields {
		value, present := values[field.Name]
		if !present || value == nil {
			continue
		}
		fieldPath := joinPath(path, field.Name)

		switch field.Kind {
		case schema.KindTags:
			normalized, err := normalizeTags(value, fieldPath)
			if err != nil {
				return err
			}
			values[field.Name] = normalized
		case schema.KindArray:
			items, ok := value.([]any)
			if !ok {
				return &ShapeError{Path: fieldPath, Kind: field.Kind, Got: value}
			}
			for i, raw := range items {
				item, ok := raw.(map[string]any)
				if !ok {
					return &ShapeError{Path: fmt.Sprintf("%s[%d]", fieldPath, i), Kind: field.Kind, Got: raw}
				}
				if err := normalizeLevel(field.ItemFields, item, fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
					return err
				}
			}
		case schema.KindObject:
			nested, ok := value.(map[string]any)
			if !ok {
				return &ShapeError{Path: fieldPath, Kind: field.Kind, Got: value}
			}
			if err := normalizeLevel(field.Fields, nested, fieldPath); err != nil {
				return err
			}
		default:
			// Scalar kinds pass through unchanged.
		}
	}
	return nil
}

// normalizeTags coerces the editing representation (one comma-separated
// string) into the ordered slice renderers consume. Already-normalized
// slices are returned as-is, which is what makes the transform idempotent.
func normalizeTags(value any, path string) (any, error) {
	switch typed := value.(type) {
	case string:
		return splitTags(typed), nil
	case []string:
		return typed, nil
	case []any:
		for i, entry := range typed {
			if _, ok := entry.(string); !ok {
				return nil, &ShapeError{Path: fmt.Sprintf("%s[%d]", path, i), Kind: schema.KindTags, Got: entry}
			}
		}
		return typed, nil
	default:
		return nil, &ShapeError{Path: path, Kind: schema.KindTags, Got: value}
	}
}

func splitTags(raw string) []string {
	pieces := strings.Split(raw, ",")
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
