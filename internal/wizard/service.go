package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-biolink/internal/logging"
	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/pkg/interfaces"
)

// Service starts wizard sessions for authenticated users.
type Service interface {
	StartSession(ctx context.Context) (*Session, error)
}

var (
	ErrRegistryRequired    = errors.New("wizard: theme registry required")
	ErrPageServiceRequired = errors.New("wizard: page service required")
	ErrAuthServiceRequired = errors.New("wizard: auth service required")
)

// ServiceOption configures service behaviour.
type ServiceOption func(*service)

// WithLogger sets the logger sessions inherit. Defaults to no-op.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxItemsEnforcement toggles the engine-level item cap for every session
// this service starts.
func WithMaxItemsEnforcement(enforce bool) ServiceOption {
	return func(s *service) {
		s.enforceMaxItems = enforce
	}
}

type service struct {
	registry        *registry.Registry
	pages           pages.Service
	auth            interfaces.AuthService
	enforceMaxItems bool
	logger          interfaces.Logger
}

// NewService constructs a wizard service instance.
func NewService(reg *registry.Registry, pageService pages.Service, auth interfaces.AuthService, opts ...ServiceOption) Service {
	if reg == nil {
		panic(ErrRegistryRequired)
	}
	if pageService == nil {
		panic(ErrPageServiceRequired)
	}
	if auth == nil {
		panic(ErrAuthServiceRequired)
	}

	s := &service{
		registry:        reg,
		pages:           pageService,
		auth:            auth,
		enforceMaxItems: true,
		logger:          logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession resolves the current user once and binds a fresh session to
// them. Anonymous callers never get a session.
func (s *service) StartSession(ctx context.Context) (*Session, error) {
	userID, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthRequired, err)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrAuthRequired
	}

	s.logger.Debug("wizard session started", "owner", userID)
	return &Session{
		registry:        s.registry,
		pages:           s.pages,
		ownerID:         strings.TrimSpace(userID),
		enforceMaxItems: s.enforceMaxItems,
		logger:          s.logger,
		step:            StepUseCase,
	}, nil
}
