package di

import (
	"context"
	"time"

	"github.com/goliatone/go-biolink/internal/logging"
	"github.com/goliatone/go-biolink/internal/logging/gologger"
	"github.com/goliatone/go-biolink/internal/pages"
	"github.com/goliatone/go-biolink/internal/registry"
	"github.com/goliatone/go-biolink/internal/renderer"
	"github.com/goliatone/go-biolink/internal/runtimeconfig"
	"github.com/goliatone/go-biolink/internal/wizard"
	"github.com/goliatone/go-biolink/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies: the theme registry, renderers, page
// storage, and the wizard service. Hosts override individual pieces through
// options; everything else gets a working default.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	loggerBound    bool
	auth           interfaces.AuthService

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	cacheTTL      time.Duration

	themeRegistry    *registry.Registry
	rendererRegistry *renderer.Registry

	pageRepo      pages.Repository
	pageRepoBound bool
	pageSvc       pages.Service
	wizardSvc     wizard.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds a bun database; page storage switches from memory to bun.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithAuth overrides the auth collaborator. The default rejects every
// session, so any real deployment supplies one.
func WithAuth(auth interfaces.AuthService) Option {
	return func(c *Container) {
		if auth != nil {
			c.auth = auth
		}
	}
}

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
			c.loggerBound = true
		}
	}
}

// WithCache overrides the default cache service and key serializer used by
// the bun page repository.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithRegistry overrides the theme registry entirely, replacing the built-in
// catalog and any configured extras.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Container) {
		if reg != nil {
			c.themeRegistry = reg
		}
	}
}

// WithRendererRegistry overrides the renderer registry.
func WithRendererRegistry(reg *renderer.Registry) Option {
	return func(c *Container) {
		if reg != nil {
			c.rendererRegistry = reg
		}
	}
}

// WithPageRepository overrides the page repository binding.
func WithPageRepository(repo pages.Repository) Option {
	return func(c *Container) {
		if repo != nil {
			c.pageRepo = repo
			c.pageRepoBound = true
		}
	}
}

// WithPageService overrides the page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		if svc != nil {
			c.pageSvc = svc
		}
	}
}

// NewContainer creates a container with the provided configuration. Invalid
// configuration is a programming error and panics, matching registry
// construction semantics.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:         cfg,
		loggerProvider: logging.NoOpProvider(),
		auth:           anonymousAuth{},
		cacheTTL:       cacheTTL,
		pageRepo:       pages.NewMemoryPageRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureRegistry()
	c.configureRepositories()

	if c.pageSvc == nil {
		c.pageSvc = pages.NewService(
			c.pageRepo,
			c.themeRegistry,
			pages.WithLogger(c.loggerProvider.GetLogger("biolink:pages")),
		)
	}

	if c.wizardSvc == nil {
		c.wizardSvc = wizard.NewService(
			c.themeRegistry,
			c.pageSvc,
			c.auth,
			wizard.WithLogger(c.loggerProvider.GetLogger("biolink:wizard")),
			wizard.WithMaxItemsEnforcement(cfg.Wizard.EnforceMaxItems),
		)
	}

	return c
}

func (c *Container) configureLogging() {
	if !c.Config.Features.Logger || c.loggerBound {
		return
	}
	if c.Config.Logging.Provider != "gologger" {
		return
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err == nil {
		c.loggerProvider = provider
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRegistry() {
	if c.themeRegistry == nil {
		descriptors := []registry.ThemeDescriptor{}
		if c.Config.Catalog.IncludeDefaults {
			descriptors = append(descriptors, registry.DefaultCatalog()...)
		}
		descriptors = append(descriptors, c.Config.Catalog.Themes...)
		c.themeRegistry = registry.MustNew(descriptors)
	}

	if c.rendererRegistry == nil {
		c.rendererRegistry = renderer.Defaults(c.themeRegistry)
	}
	c.themeRegistry = c.themeRegistry.WithRenderers(c.rendererRegistry.All())
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil || c.pageRepoBound {
		return
	}
	c.pageRepo = pages.NewBunPageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

// Registry exposes the theme registry with renderers attached.
func (c *Container) Registry() *registry.Registry {
	return c.themeRegistry
}

// Renderers exposes the renderer registry.
func (c *Container) Renderers() *renderer.Registry {
	return c.rendererRegistry
}

// PageRepository exposes the configured page repository.
func (c *Container) PageRepository() pages.Repository {
	return c.pageRepo
}

// PageService returns the configured page service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// WizardService returns the configured wizard service.
func (c *Container) WizardService() wizard.Service {
	return c.wizardSvc
}

// AuthService exposes the configured auth collaborator.
func (c *Container) AuthService() interfaces.AuthService {
	return c.auth
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// anonymousAuth is the default auth collaborator: no user, every wizard
// session start fails until the host binds a real implementation.
type anonymousAuth struct{}

func (anonymousAuth) CurrentUserID(context.Context) (string, error) {
	return "", nil
}

func (anonymousAuth) CurrentProfile(context.Context) (*interfaces.Profile, error) {
	return nil, nil
}
