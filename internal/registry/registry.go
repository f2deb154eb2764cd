package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-biolink/internal/identity"
	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrThemeNotFound       = errors.New("registry: theme not found")
	ErrThemeIDRequired     = errors.New("registry: theme id required")
	ErrThemeExists         = errors.New("registry: theme id already registered")
	ErrCategoryInvalid     = errors.New("registry: category invalid")
	ErrRendererUnavailable = errors.New("registry: renderer not registered for theme")
)

// ThemeNotFoundError reports a lookup for an id the registry does not hold.
// Callers must treat it as fatal to the current operation; there is no
// default theme to fall back to.
type ThemeNotFoundError struct {
	ID string
}

func (e *ThemeNotFoundError) Error() string {
	if e == nil || e.ID == "" {
		return ErrThemeNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrThemeNotFound.Error(), e.ID)
}

func (e *ThemeNotFoundError) Unwrap() error {
	return ErrThemeNotFound
}

// Registry is the process-wide immutable theme catalog, loaded once at
// startup and injected into wizards. It is safe for concurrent readers.
type Registry struct {
	order      []string
	byID       map[string]ThemeDescriptor
	byCategory map[Category][]string
}

// New builds a registry from the given descriptors, validating every entry:
// globally unique ids, known categories, structurally valid field schemas
// whose projection compiles, and required fields that exist at the schema
// root. Registration order is preserved and observable through lookups.
func New(descriptors []ThemeDescriptor) (*Registry, error) {
	r := &Registry{
		byID:       make(map[string]ThemeDescriptor, len(descriptors)),
		byCategory: make(map[Category][]string),
	}

	for _, descriptor := range descriptors {
		id := strings.TrimSpace(descriptor.ID)
		if id == "" {
			return nil, ErrThemeIDRequired
		}
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrThemeExists, id)
		}
		if !descriptor.Category.Known() {
			return nil, fmt.Errorf("%w: %q on theme %s", ErrCategoryInvalid, string(descriptor.Category), id)
		}
		if err := schema.Validate(descriptor.FieldSchema); err != nil {
			return nil, fmt.Errorf("theme %s: %w", id, err)
		}
		if _, err := schema.Compile(descriptor.FieldSchema); err != nil {
			return nil, fmt.Errorf("theme %s: projection: %w", id, err)
		}
		for _, name := range descriptor.RequiredFields {
			if _, ok := schema.FindField(descriptor.FieldSchema, name); !ok {
				return nil, fmt.Errorf("theme %s: required field %q: %w", id, name, schema.ErrUnknownField)
			}
		}

		descriptor.ID = id
		r.order = append(r.order, id)
		r.byID[id] = descriptor
		r.byCategory[descriptor.Category] = append(r.byCategory[descriptor.Category], id)
	}

	return r, nil
}

// MustNew builds a registry and panics on invalid descriptors. Reserved for
// the built-in catalog, which is asserted valid by tests.
func MustNew(descriptors []ThemeDescriptor) *Registry {
	r, err := New(descriptors)
	if err != nil {
		panic(err)
	}
	return r
}

// ThemesByCategory returns every descriptor in the category, in registration
// order. The result is a copy; callers may not mutate registry state.
func (r *Registry) ThemesByCategory(category Category) []ThemeDescriptor {
	ids := r.byCategory[category]
	out := make([]ThemeDescriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out
}

// ThemeByID performs an exact lookup. Unknown ids return a typed not-found
// error, never a substitute descriptor.
func (r *Registry) ThemeByID(id string) (ThemeDescriptor, error) {
	descriptor, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return ThemeDescriptor{}, &ThemeNotFoundError{ID: strings.TrimSpace(id)}
	}
	return descriptor, nil
}

// FieldSchema resolves the field schema for a theme id, failing the same way
// ThemeByID does for unknown ids.
func (r *Registry) FieldSchema(id string) ([]schema.FieldSpec, error) {
	descriptor, err := r.ThemeByID(id)
	if err != nil {
		return nil, err
	}
	return descriptor.FieldSchema, nil
}

// RendererFor resolves the render capability registered for a theme id.
func (r *Registry) RendererFor(id string) (interfaces.ThemeRenderer, error) {
	descriptor, err := r.ThemeByID(id)
	if err != nil {
		return nil, err
	}
	if descriptor.Renderer == nil {
		return nil, fmt.Errorf("%w: %s", ErrRendererUnavailable, descriptor.ID)
	}
	return descriptor.Renderer, nil
}

// WithRenderers returns a copy of the registry with the supplied renderers
// attached by theme id. Ids without an entry keep their current capability.
func (r *Registry) WithRenderers(renderers map[string]interfaces.ThemeRenderer) *Registry {
	if len(renderers) == 0 {
		return r
	}
	out := &Registry{
		order:      r.order,
		byID:       make(map[string]ThemeDescriptor, len(r.byID)),
		byCategory: r.byCategory,
	}
	for id, descriptor := range r.byID {
		if renderer, ok := renderers[id]; ok && renderer != nil {
			descriptor.Renderer = renderer
		}
		out.byID[id] = descriptor
	}
	return out
}

// IDs lists every registered theme id in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports the number of registered themes.
func (r *Registry) Len() int {
	return len(r.order)
}

func themeUUID(id string) uuid.UUID {
	return identity.ThemeUUID(id)
}
