package config

import (
	"fmt"
	"os"

	"interviewdocs/internal/question"
	"interviewdocs/internal/validation"
)

// validateSets checks each set entry names exactly one source that exists.
func validateSets(cfg *Config, baseDir string, add validation.AddFunc) {
	for i, set := range cfg.Sets {
		prefix := fmt.Sprintf("sets[%d]", i)
		switch {
		case set.File == "" && set.Builtin == "":
			add(prefix, "one of file or builtin is required")
			continue
		case set.File != "" && set.Builtin != "":
			add(prefix, "file and builtin are mutually exclusive")
			continue
		}
		if set.Offset < 0 {
			add(prefix+".offset", "must be >= 0")
		}
		if set.Builtin != "" {
			if _, err := question.CatalogSet(set.Builtin); err != nil {
				add(prefix+".builtin", err.Error())
			}
			continue
		}
		path := Resolve(baseDir, set.File)
		info, err := os.Stat(path)
		if err != nil {
			add(prefix+".file", fmt.Sprintf("not found: %s", set.File))
			continue
		}
		if info.IsDir() {
			add(prefix+".file", fmt.Sprintf("%s is a directory", set.File))
		}
	}
}
