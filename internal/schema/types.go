package schema

import "strings"

// FieldKind enumerates the closed set of editing semantics a field can carry.
// The form engine and the normalizer dispatch on it as a tagged union; a kind
// outside this set is a programming error, never a pass-through.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindURL      FieldKind = "url"
	KindTel      FieldKind = "tel"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindBoolean  FieldKind = "boolean"
	KindSelect   FieldKind = "select"
	KindTags     FieldKind = "tags"
	KindArray    FieldKind = "array"
	KindObject   FieldKind = "object"
)

var knownKinds = map[FieldKind]struct{}{
	KindText:     {},
	KindTextarea: {},
	KindEmail:    {},
	KindURL:      {},
	KindTel:      {},
	KindNumber:   {},
	KindDate:     {},
	KindBoolean:  {},
	KindSelect:   {},
	KindTags:     {},
	KindArray:    {},
	KindObject:   {},
}

// Known reports whether the kind belongs to the closed set.
func (k FieldKind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// Container reports whether the kind carries a nested field list.
func (k FieldKind) Container() bool {
	return k == KindArray || k == KindObject
}

// Scalar reports whether the kind stores a single string/number/boolean value.
func (k FieldKind) Scalar() bool {
	return k.Known() && !k.Container()
}

// FieldSpec declares one editable field: its kind, presentation metadata and
// kind-specific constraints. Array and object kinds nest further FieldSpec
// lists; every other kind carries only scalar constraints.
type FieldSpec struct {
	Name        string
	Kind        FieldKind
	Required    bool
	Label       string
	Placeholder string
	HelperText  string

	MaxLength int
	Min       *float64
	Max       *float64
	Options   []string

	MaxItems   int
	ItemFields []FieldSpec

	Fields []FieldSpec
}

// FindField returns the spec with the given name from a flat field list.
func FindField(fields []FieldSpec, name string) (FieldSpec, bool) {
	name = strings.TrimSpace(name)
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Float64 is a convenience for building Min/Max constraint pointers.
func Float64(v float64) *float64 { return &v }
