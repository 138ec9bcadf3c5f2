package cli

import (
	"interviewdocs/internal/logging"
	"interviewdocs/internal/logging/gologger"
)

// newLogger builds a module logger, or a no-op when no level is requested.
func newLogger(level, format, module string) (logging.Logger, error) {
	if level == "" {
		return logging.NoOp(), nil
	}
	provider, err := gologger.NewProvider(gologger.Config{Level: level, Format: format})
	if err != nil {
		return nil, err
	}
	return logging.ModuleLogger(provider, module), nil
}
