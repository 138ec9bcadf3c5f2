package filename

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
)

// Style selects how question text becomes the filename body.
type Style string

const (
	// StylePlain keeps the text as written minus illegal characters.
	StylePlain Style = "plain"
	// StyleSlug lowercases and hyphenates the text.
	StyleSlug Style = "slug"
)

// ParseStyle maps a flag or config value onto a Style.
func ParseStyle(value string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(StylePlain):
		return StylePlain, nil
	case string(StyleSlug):
		return StyleSlug, nil
	default:
		return "", fmt.Errorf("invalid style %q (expected plain|slug)", value)
	}
}

func slugText(raw string) (string, error) {
	normalized, err := slug.Normalize(Sanitize(raw))
	if err != nil {
		return "", fmt.Errorf("slug %q: %w", raw, err)
	}
	if normalized == "" {
		return "", fmt.Errorf("slug %q: empty result", raw)
	}
	return normalized, nil
}
