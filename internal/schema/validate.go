package schema

import (
	"fmt"
	"strings"
)

// Validate checks a root field schema against the structural contract: every
// array/object field declares its nested list and no other kind does, and
// field names are unique within each nesting level. Registries call this once
// at construction; runtime accessors may assume a valid schema afterwards.
func Validate(fields []FieldSpec) error {
	return validateLevel(fields, "", true)
}

func validateLevel(fields []FieldSpec, path string, root bool) error {
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		fieldPath := joinPath(path, name)

		if name == "" {
			return &InvalidSchemaError{Path: path, Message: "field name required"}
		}
		if name != field.Name {
			return &InvalidSchemaError{Path: fieldPath, Message: "field name has surrounding whitespace"}
		}
		if _, dup := seen[name]; dup {
			return &InvalidSchemaError{Path: fieldPath, Message: "duplicate field name"}
		}
		seen[name] = struct{}{}

		if !field.Kind.Known() {
			return &InvalidSchemaError{Path: fieldPath, Message: fmt.Sprintf("unknown kind %q", string(field.Kind))}
		}

		if !root && field.Required {
			// Required is a wizard gate, meaningful only at the content root.
			return &InvalidSchemaError{Path: fieldPath, Message: "required is only valid at the schema root"}
		}

		switch field.Kind {
		case KindArray:
			if len(field.ItemFields) == 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "array kind requires itemFields"}
			}
			if len(field.Fields) > 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "array kind must not declare fields"}
			}
			if field.MaxItems < 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "maxItems must be zero or positive"}
			}
			if err := validateLevel(field.ItemFields, fieldPath+"[]", false); err != nil {
				return err
			}
		case KindObject:
			if len(field.Fields) == 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "object kind requires fields"}
			}
			if len(field.ItemFields) > 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "object kind must not declare itemFields"}
			}
			if err := validateLevel(field.Fields, fieldPath, false); err != nil {
				return err
			}
		case KindSelect:
			if len(field.Options) == 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "select kind requires options"}
			}
			if err := validateScalarConstraints(field, fieldPath); err != nil {
				return err
			}
		default:
			if len(field.Options) > 0 {
				return &InvalidSchemaError{Path: fieldPath, Message: "options are only valid on select kind"}
			}
			if err := validateScalarConstraints(field, fieldPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateScalarConstraints(field FieldSpec, path string) error {
	if len(field.ItemFields) > 0 || len(field.Fields) > 0 {
		return &InvalidSchemaError{Path: path, Message: "nested fields are only valid on array/object kinds"}
	}
	if field.MaxItems != 0 {
		return &InvalidSchemaError{Path: path, Message: "maxItems is only valid on array kind"}
	}
	if field.MaxLength < 0 {
		return &InvalidSchemaError{Path: path, Message: "maxLength must be zero or positive"}
	}
	if field.Min != nil && field.Max != nil && *field.Min > *field.Max {
		return &InvalidSchemaError{Path: path, Message: "min must not exceed max"}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
