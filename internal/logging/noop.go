package logging

import (
	"context"

	"github.com/goliatone/go-biolink/pkg/interfaces"
)

type noopLogger struct{}

// NoOp returns a logger that discards every entry. Services default to it so
// logging stays optional for hosts.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }

func (n noopLogger) WithFields(map[string]any) interfaces.Logger { return n }

type noopProvider struct{}

// NoOpProvider returns a provider whose loggers all discard output.
func NoOpProvider() interfaces.LoggerProvider {
	return noopProvider{}
}

func (noopProvider) GetLogger(string) interfaces.Logger { return NoOp() }
