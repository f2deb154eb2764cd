package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-biolink/internal/logging"
	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

var (
	ErrSchemaRequired   = errors.New("form: field schema required")
	ErrContentRequired  = errors.New("form: content state required")
	ErrNotScalar        = errors.New("form: field is not a scalar kind")
	ErrNotArray         = errors.New("form: field is not an array kind")
	ErrNotObject        = errors.New("form: field is not an object kind")
	ErrMaxItemsReached  = errors.New("form: array field reached its item cap")
	ErrItemIndexInvalid = errors.New("form: array item index out of range")
)

// Option configures engine behaviour.
type Option func(*Engine)

// WithLogger injects the logger used for trace output. Defaults to no-op.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxItemsEnforcement toggles the engine-level maxItems cap. Enforced by
// default; hosts wanting the legacy soft-limit behaviour disable it and keep
// the cap as a UI hint only.
func WithMaxItemsEnforcement(enforce bool) Option {
	return func(e *Engine) {
		e.enforceMaxItems = enforce
	}
}

// Engine applies point updates to one ContentState under one field schema.
// It dispatches on the closed FieldKind set; meeting an unknown kind is a
// programming error surfaced as *schema.UnknownKindError, never skipped.
//
// An engine is bound to a single wizard session and is not safe for
// concurrent use; sessions are single-actor by design.
type Engine struct {
	fields          []schema.FieldSpec
	content         ContentState
	enforceMaxItems bool
	logger          interfaces.Logger
}

// NewEngine binds a validated field schema to a content state. The registry
// guarantees schema validity; the engine assumes it.
func NewEngine(fields []schema.FieldSpec, content ContentState, opts ...Option) (*Engine, error) {
	if len(fields) == 0 {
		return nil, ErrSchemaRequired
	}
	if content == nil {
		return nil, ErrContentRequired
	}
	e := &Engine{
		fields:          fields,
		content:         content,
		enforceMaxItems: true,
		logger:          logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Content returns the bound state.
func (e *Engine) Content() ContentState {
	return e.content
}

// SetScalar replaces the value of a non-container field. Constraint
// violations (maxLength, min/max) are not blocking here; they surface as
// counter hints on the derived controls so the user is never locked out of
// typing.
func (e *Engine) SetScalar(name string, value any) error {
	field, err := e.field(name)
	if err != nil {
		return err
	}
	if field.Kind.Container() {
		return fmt.Errorf("%w: %s (%s)", ErrNotScalar, name, field.Kind)
	}
	e.content[field.Name] = value
	e.logger.Trace("form.set_scalar", "field", field.Name)
	return nil
}

// AppendArrayItem appends one item-object pre-populated with empty values for
// every item field, returning the new item's index. When maxItems enforcement
// is on, appends past the declared cap are rejected with ErrMaxItemsReached
// and the state is left unchanged.
func (e *Engine) AppendArrayItem(name string) (int, error) {
	field, items, err := e.arrayField(name)
	if err != nil {
		return 0, err
	}
	if e.enforceMaxItems && field.MaxItems > 0 && len(items) >= field.MaxItems {
		return 0, fmt.Errorf("%w: %s (max %d)", ErrMaxItemsReached, field.Name, field.MaxItems)
	}

	item := make(map[string]any, len(field.ItemFields))
	for _, itemField := range field.ItemFields {
		item[itemField.Name] = emptyValue(itemField)
	}
	items = append(items, item)
	e.content[field.Name] = items
	e.logger.Trace("form.append_item", "field", field.Name, "index", len(items)-1)
	return len(items) - 1, nil
}

// RemoveArrayItem removes the item at index, preserving the order of the
// remainder. A non-existent index is a no-op, not an error; the UI may race
// removal against stale indices.
func (e *Engine) RemoveArrayItem(name string, index int) error {
	field, items, err := e.arrayField(name)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return nil
	}
	items = append(items[:index], items[index+1:]...)
	e.content[field.Name] = items
	e.logger.Trace("form.remove_item", "field", field.Name, "index", index)
	return nil
}

// SetArrayItemField updates one sub-field of one array element. Sibling items
// are never touched.
func (e *Engine) SetArrayItemField(name string, index int, itemFieldName string, value any) error {
	field, items, err := e.arrayField(name)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %s[%d]", ErrItemIndexInvalid, field.Name, index)
	}
	itemField, ok := schema.FindField(field.ItemFields, itemFieldName)
	if !ok {
		return &schema.UnknownFieldError{Name: field.Name + "." + itemFieldName}
	}

	item, ok := items[index].(map[string]any)
	if !ok {
		item = make(map[string]any, len(field.ItemFields))
	} else {
		// Replace the element wholesale so mutation stays isolated to it.
		item = cloneMap(item)
	}
	item[itemField.Name] = value
	items[index] = item
	e.content[field.Name] = items
	return nil
}

// SetObjectField updates one key of an object-kind field's value map.
func (e *Engine) SetObjectField(name, nestedFieldName string, value any) error {
	field, err := e.field(name)
	if err != nil {
		return err
	}
	if field.Kind != schema.KindObject {
		return fmt.Errorf("%w: %s (%s)", ErrNotObject, name, field.Kind)
	}
	nested, ok := schema.FindField(field.Fields, nestedFieldName)
	if !ok {
		return &schema.UnknownFieldError{Name: field.Name + "." + nestedFieldName}
	}

	current, ok := e.content[field.Name].(map[string]any)
	if !ok {
		current = make(map[string]any, len(field.Fields))
	}
	current[nested.Name] = value
	e.content[field.Name] = current
	return nil
}

func (e *Engine) field(name string) (schema.FieldSpec, error) {
	field, ok := schema.FindField(e.fields, name)
	if !ok {
		return schema.FieldSpec{}, &schema.UnknownFieldError{Name: name}
	}
	if !field.Kind.Known() {
		return schema.FieldSpec{}, &schema.UnknownKindError{Name: field.Name, Kind: field.Kind}
	}
	return field, nil
}

func (e *Engine) arrayField(name string) (schema.FieldSpec, []any, error) {
	field, err := e.field(name)
	if err != nil {
		return schema.FieldSpec{}, nil, err
	}
	if field.Kind != schema.KindArray {
		return schema.FieldSpec{}, nil, fmt.Errorf("%w: %s (%s)", ErrNotArray, name, field.Kind)
	}
	items, _ := e.content[field.Name].([]any)
	return field, items, nil
}

// emptyValue returns the zero editing value for an item field. Scalars and
// tags edit as strings; nested containers start empty.
func emptyValue(field schema.FieldSpec) any {
	switch field.Kind {
	case schema.KindArray:
		return []any{}
	case schema.KindObject:
		value := make(map[string]any, len(field.Fields))
		for _, nested := range field.Fields {
			value[nested.Name] = emptyValue(nested)
		}
		return value
	case schema.KindBoolean:
		return false
	default:
		return ""
	}
}
