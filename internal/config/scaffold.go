package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
output_dir: "."
style: plain
no_overwrite: false

log:
  level: ""
  format: console

sets:
  - builtin: closure-basic
    dir: "closure/Basic Closure Questions"
  - builtin: closure-intermediate
    dir: "closure/Intermediate Closure Questions"
  - builtin: closure-advanced
    dir: "closure/Advanced Closure Questions"
`

// Scaffold writes a starter config, refusing to replace an existing file.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
