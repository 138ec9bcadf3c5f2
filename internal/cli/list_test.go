package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestListReportsDrift(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "01. Alpha.md"), "# Alpha\n\n")
	writeFile(t, filepath.Join(dir, "02._Beta.md"), "# Beta\n\n")
	writeFile(t, filepath.Join(dir, "README.md"), "no heading\n")

	code, out, errOut := runCLI(t, "list", dir)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	for _, want := range []string{
		"ok    01. Alpha.md",
		"drift 02._Beta.md (expected 02. Beta.md)",
		"other README.md",
		"3 file(s), 2 drifted, 0 unreadable.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestListMissingDirectory(t *testing.T) {
	code, _, errOut := runCLI(t, "list", filepath.Join(t.TempDir(), "missing"))
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.HasPrefix(errOut, "Error reading directory:") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}
