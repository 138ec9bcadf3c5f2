package filename

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// illegalRunes are removed from generated filenames. All are ASCII, so they
// never appear inside a multi-byte sequence.
const illegalRunes = `<>:"/\|?*`

// MarkdownExt is the only extension the renamer and lister act on.
const MarkdownExt = ".md"

// Sanitize deletes every character from the set < > : " / \ | ? *.
// Nothing is replaced, trimmed, or case-folded.
func Sanitize(raw string) string {
	if !strings.ContainsAny(raw, illegalRunes) {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if strings.IndexByte(illegalRunes, raw[i]) >= 0 {
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// Ordinal renders index+offset left-padded with zeros to at least two digits.
func Ordinal(index, offset int) string {
	value := index + offset
	if value >= 0 && value < 10 {
		return "0" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// Build returns "{ordinal}. {sanitized}.md".
func Build(index, offset int, raw string) string {
	return Ordinal(index, offset) + ". " + Sanitize(raw) + MarkdownExt
}

// BuildStyled builds a filename using the requested text style.
func BuildStyled(index, offset int, raw string, style Style) (string, error) {
	switch style {
	case "", StylePlain:
		return Build(index, offset, raw), nil
	case StyleSlug:
		text, err := slugText(raw)
		if err != nil {
			return "", err
		}
		return Ordinal(index, offset) + ". " + text + MarkdownExt, nil
	default:
		return "", fmt.Errorf("unknown filename style %q", style)
	}
}

// NormalizeWhitespace replaces every run of whitespace with a single underscore.
// Bytes that are not valid UTF-8 are copied through unchanged.
func NormalizeWhitespace(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inSpace := false
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if r != utf8.RuneError || size != 1 {
			if unicode.IsSpace(r) {
				if !inSpace {
					b.WriteByte('_')
					inSpace = true
				}
				i += size
				continue
			}
		}
		inSpace = false
		b.WriteString(name[i : i+size])
		i += size
	}
	return b.String()
}

// IsMarkdown reports whether name has the exact extension ".md".
// A bare ".md" is a dotfile with no extension.
func IsMarkdown(name string) bool {
	return name != MarkdownExt && filepath.Ext(name) == MarkdownExt
}
