package renderer

import (
	"strings"
	"sync"

	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

// Registry maps theme ids to render capabilities. The wizard and page
// resolution only ever see the interfaces.ThemeRenderer capability; hosts
// replace individual entries to swap a theme's presentation.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]interfaces.ThemeRenderer
}

// NewRegistry constructs an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]interfaces.ThemeRenderer)}
}

// Register binds a renderer to a theme id, replacing any previous entry.
func (r *Registry) Register(themeID string, renderer interfaces.ThemeRenderer) {
	id := strings.TrimSpace(themeID)
	if id == "" || renderer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = renderer
}

// Get resolves the renderer for a theme id.
func (r *Registry) Get(themeID string) (interfaces.ThemeRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.byID[strings.TrimSpace(themeID)]
	return renderer, ok
}

// All returns a copy of the id-to-renderer map, suitable for
// registry.WithRenderers.
func (r *Registry) All() map[string]interfaces.ThemeRenderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]interfaces.ThemeRenderer, len(r.byID))
	for id, renderer := range r.byID {
		out[id] = renderer
	}
	return out
}

// Defaults builds a registry holding the generic schema-driven HTML renderer
// for every registered theme, so the module renders end-to-end out of the box.
func Defaults(themes *registry.Registry) *Registry {
	out := NewRegistry()
	if themes == nil {
		return out
	}
	for _, id := range themes.IDs() {
		descriptor, err := themes.ThemeByID(id)
		if err != nil {
			continue
		}
		out.Register(id, NewHTMLRenderer(descriptor.ID, descriptor.DisplayName, descriptor.FieldSchema))
	}
	return out
}
