package schema

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaInvalid    = errors.New("schema: field schema is invalid")
	ErrUnknownFieldKind = errors.New("schema: unknown field kind")
	ErrUnknownField     = errors.New("schema: field not found")
)

// InvalidSchemaError reports why a field schema failed construction-time
// validation. Path identifies the offending field using dot notation.
type InvalidSchemaError struct {
	Path    string
	Message string
}

func (e *InvalidSchemaError) Error() string {
	if e == nil {
		return ErrSchemaInvalid.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrSchemaInvalid.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchemaInvalid.Error(), e.Path, e.Message)
}

func (e *InvalidSchemaError) Unwrap() error {
	return ErrSchemaInvalid
}

// UnknownFieldError reports a lookup for a field name the schema does not
// declare. It is fatal to the operation that raised it.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	if e == nil || e.Name == "" {
		return ErrUnknownField.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnknownField.Error(), e.Name)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// UnknownKindError reports a field kind outside the closed set. It indicates
// a programming error in whoever built the schema.
type UnknownKindError struct {
	Name string
	Kind FieldKind
}

func (e *UnknownKindError) Error() string {
	if e == nil {
		return ErrUnknownFieldKind.Error()
	}
	return fmt.Sprintf("%s: %q on field %q", ErrUnknownFieldKind.Error(), string(e.Kind), e.Name)
}

func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownFieldKind
}
