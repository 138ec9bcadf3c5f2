package config

import (
	"os"
	"path/filepath"
	"testing"
)

// validConfig returns a minimal config used by validation tests.
func validConfig() Config {
	return Config{
		Version:   1,
		OutputDir: ".",
		Style:     "plain",
		Sets: []SetConfig{
			{Builtin: "closure-basic", Dir: "closure"},
		},
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
