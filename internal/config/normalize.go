package config

import "strings"

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	cfg.Style = strings.ToLower(strings.TrimSpace(cfg.Style))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	for i := range cfg.Sets {
		cfg.Sets[i].File = strings.TrimSpace(cfg.Sets[i].File)
		cfg.Sets[i].Builtin = strings.TrimSpace(cfg.Sets[i].Builtin)
		cfg.Sets[i].Dir = strings.TrimSpace(cfg.Sets[i].Dir)
	}
}
