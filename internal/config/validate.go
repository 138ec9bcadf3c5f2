package config

import (
	"fmt"

	"interviewdocs/internal/filename"
	"interviewdocs/internal/validation"
)

var (
	logLevels  = map[string]bool{"": true, "trace": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true}
	logFormats = map[string]bool{"": true, "console": true, "json": true, "pretty": true}
)

// Validate checks a config for correctness and referenced files.
func Validate(cfg *Config, baseDir string) error {
	collector := validation.NewCollector("config")

	if cfg.Version == 0 {
		collector.Add("version", "is required")
	} else if cfg.Version != 1 {
		collector.Add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if _, err := filename.ParseStyle(cfg.Style); err != nil {
		collector.Add("style", err.Error())
	}
	if !logLevels[cfg.Log.Level] {
		collector.Add("log.level", fmt.Sprintf("unsupported level %q", cfg.Log.Level))
	}
	if !logFormats[cfg.Log.Format] {
		collector.Add("log.format", fmt.Sprintf("unsupported format %q (expected console|json|pretty)", cfg.Log.Format))
	}

	if baseDir == "" {
		baseDir = "."
	}
	validateSets(cfg, baseDir, collector.Add)

	return collector.Result()
}
