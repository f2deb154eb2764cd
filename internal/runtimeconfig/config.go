package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-biolink/internal/registry"
)

var (
	ErrStorageProviderUnknown  = errors.New("biolink config: storage provider is invalid")
	ErrCatalogEmpty            = errors.New("biolink config: catalog excludes defaults and defines no themes")
	ErrLoggingProviderRequired = errors.New("biolink config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("biolink config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("biolink config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("biolink config: logging format is invalid")
	ErrCacheTTLInvalid         = errors.New("biolink config: cache ttl must be zero or positive")
)

// Config aggregates feature flags and adapter bindings for the biolink
// module. Fields use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Cache    CacheConfig
	Catalog  CatalogConfig
	Wizard   WizardConfig
	Features Features
	Logging  LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles for the page repository.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CatalogConfig controls theme registry bootstrapping. Extra descriptors are
// appended after the built-in catalog so ids stay stable.
type CatalogConfig struct {
	IncludeDefaults bool
	Themes          []registry.ThemeDescriptor
}

// WizardConfig captures creation-flow behaviour.
type WizardConfig struct {
	EnforceMaxItems bool
}

// Features toggles module functionality.
type Features struct {
	Commands bool
	Logger   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults: built-in catalog, memory-safe
// caching, item caps enforced.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Catalog: CatalogConfig{
			IncludeDefaults: true,
		},
		Wizard: WizardConfig{
			EnforceMaxItems: true,
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if provider := normalizeProvider(cfg.Storage.Provider); provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if !cfg.Catalog.IncludeDefaults && len(cfg.Catalog.Themes) == 0 {
		return ErrCatalogEmpty
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "memory", "bun":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
