package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-biolink/internal/identity"
	"github.com/goliatone/go-biolink/internal/logging"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/internal/schema"
	"github.com/goliatone/go-biolink/pkg/interfaces"
	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// Service exposes page publication and lookup.
type Service interface {
	CreatePage(ctx context.Context, input CreatePageInput) (*Page, error)
	GetPage(ctx context.Context, id uuid.UUID) (*Page, error)
	GetPageBySlug(ctx context.Context, slugValue string) (*Page, error)
	ListPagesByOwner(ctx context.Context, ownerID string) ([]*Page, error)
}

// CreatePageInput carries everything publication needs. Content must already
// be normalized; the service re-validates it against the theme's schema
// projection before any row is written.
type CreatePageInput struct {
	OwnerID string
	ThemeID string
	// Slug is an optional explicit slug. When empty the service derives one
	// from the content's headline-like field, falling back to the owner id.
	Slug    string
	Content map[string]any
}

var (
	ErrRepositoryRequired = errors.New("pages: repository required")
	ErrRegistryRequired   = errors.New("pages: theme registry required")
	ErrOwnerRequired      = errors.New("pages: owner id required")
	ErrSlugUnavailable    = errors.New("pages: could not derive an available slug")
)

// IDGenerator derives the page id from its owner and slug.
type IDGenerator func(ownerID, slugValue string) uuid.UUID

// ServiceOption configures service behaviour.
type ServiceOption func(*service)

// WithNow overrides the time source (primarily for tests).
func WithNow(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPageIDGenerator overrides the default deterministic ID generator.
func WithPageIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger sets the service logger. Defaults to no-op.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo     Repository
	registry *registry.Registry
	id       IDGenerator
	now      func() time.Time
	logger   interfaces.Logger
}

// NewService constructs a page service instance.
func NewService(repo Repository, reg *registry.Registry, opts ...ServiceOption) Service {
	if repo == nil {
		panic(ErrRepositoryRequired)
	}
	if reg == nil {
		panic(ErrRegistryRequired)
	}

	s := &service{
		repo:     repo,
		registry: reg,
		id:       identity.PageUUID,
		now:      time.Now,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreatePage(ctx context.Context, input CreatePageInput) (*Page, error) {
	ownerID := strings.TrimSpace(input.OwnerID)
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}

	descriptor, err := s.registry.ThemeByID(input.ThemeID)
	if err != nil {
		return nil, err
	}

	content := input.Content
	if content == nil {
		content = map[string]any{}
	}
	if err := schema.ValidatePayload(descriptor.FieldSchema, content); err != nil {
		return nil, err
	}

	slugValue, err := s.resolveSlug(ctx, input.Slug, ownerID, content)
	if err != nil {
		return nil, err
	}

	now := s.now()
	page := &Page{
		ID:          s.id(ownerID, slugValue),
		ThemeID:     descriptor.ID,
		Category:    descriptor.Category,
		Slug:        slugValue,
		OwnerID:     ownerID,
		Content:     cloneContent(content),
		PublishedAt: now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, page)
	if err != nil {
		return nil, err
	}

	s.logger.Info("page published",
		"page_id", created.ID.String(),
		"theme", created.ThemeID,
		"slug", created.Slug,
	)
	return created, nil
}

func (s *service) GetPage(ctx context.Context, id uuid.UUID) (*Page, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetPageBySlug(ctx context.Context, slugValue string) (*Page, error) {
	return s.repo.GetBySlug(ctx, strings.TrimSpace(slugValue))
}

func (s *service) ListPagesByOwner(ctx context.Context, ownerID string) ([]*Page, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

const maxSlugAttempts = 50

// resolveSlug normalizes the requested slug and suffixes it until it does not
// collide with an existing page.
func (s *service) resolveSlug(ctx context.Context, requested, ownerID string, content map[string]any) (string, error) {
	base := slugBase(requested, ownerID, content)
	normalized, err := slug.Normalize(base)
	if err != nil || normalized == "" {
		normalized, err = slug.Normalize(ownerID)
		if err != nil || normalized == "" {
			return "", fmt.Errorf("%w: %q", ErrSlugUnavailable, base)
		}
	}

	candidate := normalized
	for attempt := 2; attempt <= maxSlugAttempts; attempt++ {
		if _, err := s.repo.GetBySlug(ctx, candidate); err != nil {
			if errors.Is(err, ErrNotFound) {
				return candidate, nil
			}
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", normalized, attempt)
	}
	return "", fmt.Errorf("%w: %q", ErrSlugUnavailable, normalized)
}

// slugBase picks the text the slug derives from: an explicit request wins,
// then the first headline-like content field, then the owner id.
func slugBase(requested, ownerID string, content map[string]any) string {
	if trimmed := strings.TrimSpace(requested); trimmed != "" {
		return trimmed
	}
	for _, key := range []string{"name", "headline", "product_name", "business_name", "title"} {
		if value, ok := content[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ownerID
}
