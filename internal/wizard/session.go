package wizard

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-biolink/internal/form"
	"github.com/goliatone/go-biolink/internal/normalize"
	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

// Step identifies one stage of the creation flow.
type Step string

const (
	StepUseCase   Step = "use_case"
	StepTheme     Step = "theme"
	StepContent   Step = "content"
	StepPreview   Step = "preview"
	StepPublished Step = "published"
)

// Session is one user's walk through the creation flow. It owns the editable
// content state and moves strictly one step at a time. Sessions are
// single-actor and not safe for concurrent use.
type Session struct {
	registry        *registry.Registry
	pages           pages.Service
	ownerID         string
	enforceMaxItems bool
	logger          interfaces.Logger

	step      Step
	category  registry.Category
	theme     *registry.ThemeDescriptor
	engine    *form.Engine
	preview   form.ContentState
	published *pages.Page
}

// OwnerID returns the authenticated user the session belongs to.
func (s *Session) OwnerID() string {
	return s.ownerID
}

// Step reports the current step.
func (s *Session) Step() Step {
	return s.step
}

// Categories lists the selectable use cases in presentation order.
func (s *Session) Categories() []registry.Category {
	return registry.Categories()
}

// Category returns the selected use case, empty until one is chosen.
func (s *Session) Category() registry.Category {
	return s.category
}

// Theme returns the selected descriptor, nil until one is chosen.
func (s *Session) Theme() *registry.ThemeDescriptor {
	return s.theme
}

// SelectCategory records the use case and advances to theme selection.
// Changing category invalidates any previously selected theme and its
// content.
func (s *Session) SelectCategory(value string) error {
	if err := s.requireStep(StepUseCase, "select category"); err != nil {
		return err
	}
	category, ok := registry.ParseCategory(value)
	if !ok {
		return fmt.Errorf("%w: %q", registry.ErrCategoryInvalid, value)
	}
	if category != s.category {
		s.theme = nil
		s.engine = nil
	}
	s.category = category
	s.step = StepTheme
	return nil
}

// Themes lists the descriptors available for the selected category.
func (s *Session) Themes() ([]registry.ThemeDescriptor, error) {
	if s.category == "" {
		return nil, ErrCategoryRequired
	}
	return s.registry.ThemesByCategory(s.category), nil
}

// SelectTheme binds the session to a theme and advances to content editing.
// Selecting a different theme than before discards the previous content state
// entirely; re-selecting the same theme keeps it.
func (s *Session) SelectTheme(id string) error {
	if err := s.requireStep(StepTheme, "select theme"); err != nil {
		return err
	}
	descriptor, err := s.registry.ThemeByID(id)
	if err != nil {
		return err
	}
	if descriptor.Category != s.category {
		return fmt.Errorf("%w: %s is in %s", ErrThemeNotInCategory, descriptor.ID, descriptor.Category)
	}

	if s.theme == nil || s.theme.ID != descriptor.ID {
		engine, err := form.NewEngine(
			descriptor.FieldSchema,
			form.NewContentState(),
			form.WithMaxItemsEnforcement(s.enforceMaxItems),
			form.WithLogger(s.logger),
		)
		if err != nil {
			return err
		}
		s.engine = engine
		s.theme = &descriptor
		s.logger.Debug("wizard theme selected", "theme", descriptor.ID)
	}
	s.step = StepContent
	return nil
}

// Content returns the live editable state.
func (s *Session) Content() (form.ContentState, error) {
	if s.engine == nil {
		return nil, ErrThemeRequired
	}
	return s.engine.Content(), nil
}

// Controls derives the form controls for the selected theme and current
// content.
func (s *Session) Controls() ([]form.Control, error) {
	if err := s.requireStep(StepContent, "derive controls"); err != nil {
		return nil, err
	}
	return s.engine.Controls()
}

// SetScalar updates one scalar field value.
func (s *Session) SetScalar(name string, value any) error {
	if err := s.requireStep(StepContent, "set scalar"); err != nil {
		return err
	}
	return s.engine.SetScalar(name, value)
}

// AppendArrayItem appends an empty item to an array field.
func (s *Session) AppendArrayItem(name string) (int, error) {
	if err := s.requireStep(StepContent, "append item"); err != nil {
		return 0, err
	}
	return s.engine.AppendArrayItem(name)
}

// RemoveArrayItem removes the item at index from an array field.
func (s *Session) RemoveArrayItem(name string, index int) error {
	if err := s.requireStep(StepContent, "remove item"); err != nil {
		return err
	}
	return s.engine.RemoveArrayItem(name, index)
}

// SetArrayItemField updates one sub-field of one array item.
func (s *Session) SetArrayItemField(name string, index int, itemField string, value any) error {
	if err := s.requireStep(StepContent, "set item field"); err != nil {
		return err
	}
	return s.engine.SetArrayItemField(name, index, itemField, value)
}

// SetObjectField updates one key of an object field.
func (s *Session) SetObjectField(name, nestedField string, value any) error {
	if err := s.requireStep(StepContent, "set object field"); err != nil {
		return err
	}
	return s.engine.SetObjectField(name, nestedField, value)
}

// Next advances the session one step forward. The content step is gated: the
// theme's required fields must be non-empty, and the content must normalize
// cleanly, before the preview payload is captured.
func (s *Session) Next() error {
	switch s.step {
	case StepUseCase:
		if s.category == "" {
			return ErrCategoryRequired
		}
		s.step = StepTheme
		return nil
	case StepTheme:
		if s.theme == nil {
			return ErrThemeRequired
		}
		s.step = StepContent
		return nil
	case StepContent:
		if err := s.gate(); err != nil {
			return err
		}
		normalized, err := normalize.Content(s.theme.FieldSchema, s.engine.Content())
		if err != nil {
			return err
		}
		s.preview = normalized
		s.step = StepPreview
		return nil
	case StepPreview:
		return &TransitionError{Step: s.step, Action: "next (publish instead)"}
	default:
		return ErrSessionFinished
	}
}

// Back moves one step backward. Leaving the preview drops the captured
// payload; the editable state is untouched, so edits resume where they left
// off.
func (s *Session) Back() error {
	switch s.step {
	case StepPreview:
		s.preview = nil
		s.step = StepContent
		return nil
	case StepContent:
		s.step = StepTheme
		return nil
	case StepTheme:
		s.step = StepUseCase
		return nil
	case StepUseCase:
		return &TransitionError{Step: s.step, Action: "back"}
	default:
		return ErrSessionFinished
	}
}

// Preview returns the normalized payload captured when the content gate
// passed. Only available at the preview step.
func (s *Session) Preview() (map[string]any, error) {
	if err := s.requireStep(StepPreview, "preview"); err != nil {
		return nil, err
	}
	return s.preview.Clone().AsMap(), nil
}

// RenderPreview renders the captured payload with the theme's renderer. The
// same payload later goes to publication, so what the user previews is what
// gets published.
func (s *Session) RenderPreview(ctx context.Context) ([]byte, error) {
	if err := s.requireStep(StepPreview, "render preview"); err != nil {
		return nil, err
	}
	renderer, err := s.registry.RendererFor(s.theme.ID)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, s.preview.Clone().AsMap())
}

// Publish hands the captured payload to the page service exactly once. On
// failure the session stays at the preview step and the collaborator's error
// is returned untouched; the user can retry or go back.
func (s *Session) Publish(ctx context.Context) (*pages.Page, error) {
	if err := s.requireStep(StepPreview, "publish"); err != nil {
		return nil, err
	}

	page, err := s.pages.CreatePage(ctx, pages.CreatePageInput{
		OwnerID: s.ownerID,
		ThemeID: s.theme.ID,
		Content: s.preview.Clone().AsMap(),
	})
	if err != nil {
		return nil, err
	}

	s.published = page
	s.step = StepPublished
	s.logger.Info("wizard session published", "owner", s.ownerID, "theme", s.theme.ID, "slug", page.Slug)
	return page, nil
}

// PublishedPage returns the created page after a successful publish.
func (s *Session) PublishedPage() *pages.Page {
	return s.published
}

func (s *Session) requireStep(step Step, action string) error {
	if s.step == step {
		return nil
	}
	return &TransitionError{Step: s.step, Action: action}
}

// gate checks the theme's required fields against the live content. Every
// missing field is reported at once, keyed by name and described by label.
func (s *Session) gate() error {
	fields := validation.Errors{}
	content := s.engine.Content()
	for _, name := range s.theme.RequiredFields {
		if !valueMissing(content[name]) {
			continue
		}
		label := name
		if field, ok := schema.FindField(s.theme.FieldSchema, name); ok && field.Label != "" {
			label = field.Label
		}
		fields[name] = validation.NewError("validation_required", fmt.Sprintf("%s is required", label))
	}
	if len(fields) > 0 {
		return &GateError{Fields: fields}
	}
	return nil
}

func valueMissing(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case []any:
		return len(typed) == 0
	case []string:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	}
	return false
}
