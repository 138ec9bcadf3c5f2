package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveColor decides whether console prefixes get color.
func resolveColor(mode string, noColor bool, stdout io.Writer) (bool, error) {
	if noColor {
		return false, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return isTerminal(stdout), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto|always|never)", mode)
	}
}

// defaultIsTerminal inspects the writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

// palette renders the console prefixes.
type palette struct {
	color bool
}

var (
	createdColor = lipgloss.Color("42")
	renamedColor = lipgloss.Color("33")
	skippedColor = lipgloss.Color("244")
	errorColor   = lipgloss.Color("196")
	summaryColor = lipgloss.Color("242")
)

func (p palette) created(text string) string { return p.stylize(text, createdColor) }
func (p palette) renamed(text string) string { return p.stylize(text, renamedColor) }
func (p palette) skipped(text string) string { return p.stylize(text, skippedColor) }
func (p palette) failure(text string) string { return p.stylize(text, errorColor) }
func (p palette) summary(text string) string { return p.stylize(text, summaryColor) }

func (p palette) stylize(text string, color lipgloss.Color) string {
	if !p.color {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
