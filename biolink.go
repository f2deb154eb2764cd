// Package biolink is the schema-driven core of a link-in-bio page builder:
// a registry of themes grouped by use case, a form engine that derives
// editing controls from each theme's field schema, a publish-time content
// normalizer, and the step-gated creation wizard that ties them together.
package biolink

import (
	"context"

	"github.com/goliatone/go-biolink/internal/di"
	"github.com/goliatone/go-biolink/internal/form"
	"github.com/goliatone/go-biolink/internal/normalize"
	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/internal/renderer"
	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/internal/wizard"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

// Theme registry contracts.
type (
	Category        = registry.Category
	ThemeDescriptor = registry.ThemeDescriptor
	ThemeRegistry   = registry.Registry
)

// Field schema contracts.
type (
	FieldKind = schema.FieldKind
	FieldSpec = schema.FieldSpec
)

// Form engine contracts.
type (
	ContentState = form.ContentState
	Control      = form.Control
)

// Wizard contracts.
type (
	WizardService = wizard.Service
	WizardSession = wizard.Session
	WizardStep    = wizard.Step
	GateError     = wizard.GateError
)

// Page persistence contracts.
type (
	Page            = pages.Page
	PageService     = pages.Service
	PageRepository  = pages.Repository
	CreatePageInput = pages.CreatePageInput
)

// Collaborator contracts hosts implement or consume.
type (
	AuthService   = interfaces.AuthService
	Profile       = interfaces.Profile
	ThemeRenderer = interfaces.ThemeRenderer
)

// Wizard step values.
const (
	StepUseCase   = wizard.StepUseCase
	StepTheme     = wizard.StepTheme
	StepContent   = wizard.StepContent
	StepPreview   = wizard.StepPreview
	StepPublished = wizard.StepPublished
)

// DefaultCatalog returns the built-in theme descriptors.
func DefaultCatalog() []ThemeDescriptor {
	return registry.DefaultCatalog()
}

// NormalizeContent applies the publish-time normalization pass to a content
// state under a field schema. Exposed for hosts that render content stored
// outside the module.
func NormalizeContent(fields []FieldSpec, content ContentState) (ContentState, error) {
	return normalize.Content(fields, content)
}

// Module is the top level biolink runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a biolink module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Module{container: di.NewContainer(cfg, opts...)}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Registry returns the theme registry with renderers attached.
func (m *Module) Registry() *ThemeRegistry {
	return m.container.Registry()
}

// Renderers returns the renderer registry keyed by theme id.
func (m *Module) Renderers() *renderer.Registry {
	return m.container.Renderers()
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Wizard starts a creation session for the current user.
func (m *Module) Wizard(ctx context.Context) (*WizardSession, error) {
	return m.container.WizardService().StartSession(ctx)
}
