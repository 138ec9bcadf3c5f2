package filename

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "question mark", in: "What is the time complexity of map()?", want: "What is the time complexity of map()"},
		{name: "all illegal", in: `<>:"/\|?*`, want: ""},
		{name: "collapse words", in: "a/b\\c", want: "abc"},
		{name: "keeps spaces", in: "  padded  ", want: "  padded  "},
		{name: "unicode", in: "What happens if filter() doesn’t find any matching elements?", want: "What happens if filter() doesn’t find any matching elements"},
		{name: "empty", in: "", want: ""},
		{name: "invalid utf8 kept", in: "a?b\xff", want: "ab\xff"},
		{name: "invalid utf8 only", in: "\xfe\xff", want: "\xfe\xff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// TestSanitizePreservesOrder verifies only illegal runes are dropped.
func TestSanitizePreservesOrder(t *testing.T) {
	in := `x<y>z:"w"/v\u|t?s*r é`
	got := Sanitize(in)
	if strings.ContainsAny(got, illegalRunes) {
		t.Fatalf("illegal rune left in %q", got)
	}
	var kept []rune
	for _, r := range in {
		if !strings.ContainsRune(illegalRunes, r) {
			kept = append(kept, r)
		}
	}
	if got != string(kept) {
		t.Fatalf("expected %q, got %q", string(kept), got)
	}
}

func TestOrdinal(t *testing.T) {
	cases := []struct {
		index, offset int
		want          string
	}{
		{0, 1, "01"},
		{8, 1, "09"},
		{9, 1, "10"},
		{0, 61, "61"},
		{98, 1, "99"},
		{99, 1, "100"},
		{0, 0, "00"},
		{1000, 61, "1061"},
	}
	for _, tc := range cases {
		if got := Ordinal(tc.index, tc.offset); got != tc.want {
			t.Fatalf("Ordinal(%d, %d) = %q, want %q", tc.index, tc.offset, got, tc.want)
		}
	}
}

func TestOrdinalWidth(t *testing.T) {
	for sum := 0; sum <= 99; sum++ {
		if got := Ordinal(sum, 0); len(got) != 2 {
			t.Fatalf("Ordinal(%d, 0) = %q, expected two digits", sum, got)
		}
	}
}

func TestBuild(t *testing.T) {
	if got := Build(0, 1, "Alpha"); got != "01. Alpha.md" {
		t.Fatalf("unexpected filename %q", got)
	}
	if got := Build(4, 20, "Can filter() modify the original array?"); got != "24. Can filter() modify the original array.md" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestBuildStyledSlug(t *testing.T) {
	got, err := BuildStyled(0, 1, "What is a closure in JavaScript?", StyleSlug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "01. ") || !strings.HasSuffix(got, ".md") {
		t.Fatalf("unexpected filename %q", got)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(got, "01. "), ".md")
	if strings.ContainsAny(body, " ?") {
		t.Fatalf("expected slug body, got %q", body)
	}
}

func TestBuildStyledPlainMatchesBuild(t *testing.T) {
	got, err := BuildStyled(2, 8, "What does map() return?", StylePlain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Build(2, 8, "What does map() return?") {
		t.Fatalf("plain style diverged: %q", got)
	}
}

func TestBuildStyledUnknown(t *testing.T) {
	if _, err := BuildStyled(0, 1, "x", Style("camel")); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{"": StylePlain, "plain": StylePlain, " SLUG ": StyleSlug} {
		got, err := ParseStyle(in)
		if err != nil {
			t.Fatalf("ParseStyle(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseStyle(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseStyle("kebab"); err == nil {
		t.Fatalf("expected error for invalid style")
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := map[string]string{
		"My Question.md":         "My_Question.md",
		"No_Spaces.md":           "No_Spaces.md",
		"01. What  is\tthis?.md": "01._What_is_this?.md",
		" lead and trail ":       "_lead_and_trail_",
		"":                       "",
		"my file\xfe.md":         "my_file\xfe.md",
		"a\xff\u00a0\xfeb.md":    "a\xff_\xfeb.md",
	}
	for in, want := range cases {
		if got := NormalizeWhitespace(in); got != want {
			t.Fatalf("NormalizeWhitespace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsMarkdown(t *testing.T) {
	cases := map[string]bool{
		"a.md":       true,
		"01. Q.md":   true,
		"notes.MD":   false,
		"readme.txt": false,
		".md":        false,
		"a.md.bak":   false,
	}
	for in, want := range cases {
		if got := IsMarkdown(in); got != want {
			t.Fatalf("IsMarkdown(%q) = %v, want %v", in, got, want)
		}
	}
}
