package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateSetFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yml")
	bad := filepath.Join(dir, "bad.json")
	writeFile(t, good, "version: 1\noffset: 11\nquestions:\n  - \"One\"\n  - \"Two\"\n")
	writeFile(t, bad, `{"version":1,"offset":"eleven","questions":["One"]}`)

	code, out, errOut := runCLI(t, "validate", good, bad)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(out, "OK   "+good+" (2 question(s), ordinals 11-12)") {
		t.Fatalf("unexpected stdout %q", out)
	}
	if !strings.Contains(errOut, "FAIL "+bad) {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestValidateConfig(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".interviewdocs.yml")
	writeFile(t, path, "version: 1\nsets:\n  - builtin: closure-basic\n")

	code, out, errOut := runCLI(t, "validate", "--config", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Config OK: "+path+" (1 set(s))") {
		t.Fatalf("unexpected stdout %q", out)
	}
}

func TestValidateConfigInvalid(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".interviewdocs.yml")
	writeFile(t, path, "version: 1\nsets:\n  - builtin: nope\n")

	code, _, errOut := runCLI(t, "validate", "--config", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Config invalid") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestValidateConfigWithFilesIsUsageError(t *testing.T) {
	code, _, _ := runCLI(t, "validate", "--config", "x.yml", "set.yml")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
