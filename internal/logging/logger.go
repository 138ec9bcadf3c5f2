// Package logging defines the structured diagnostics contract used across
// interviewdocs. User-facing console lines are printed separately by the CLI;
// this logger only carries optional diagnostics.
package logging

import "maps"

// Logger is the minimal structured logger the emitter and renamer depend on.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// FieldsLogger is implemented by loggers that can carry structured fields.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

// Provider hands out named loggers.
type Provider interface {
	GetLogger(name string) Logger
}

// Module names used when requesting loggers.
const (
	RootModule    = "interviewdocs"
	EmitterModule = "interviewdocs.emitter"
	RenamerModule = "interviewdocs.renamer"
)

// NoOp returns a logger that discards everything.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) Logger { return n }

// OrNoOp returns logger, or a no-op logger when nil.
func OrNoOp(logger Logger) Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

// WithFields attaches fields when the logger supports them.
func WithFields(logger Logger, fields map[string]any) Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}
	return logger
}

// ModuleLogger returns a module-scoped logger, or a no-op when provider is nil.
func ModuleLogger(provider Provider, module string) Logger {
	if module == "" {
		module = RootModule
	}
	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"module": module})
}
