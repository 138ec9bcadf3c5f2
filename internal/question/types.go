package question

// Set is one numbered list of questions loaded from JSON or YAML.
type Set struct {
	Version   int      `json:"version" yaml:"version"`
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Offset    int      `json:"offset" yaml:"offset"`
	Questions []string `json:"questions" yaml:"questions"`
}

// Entry is a question paired with its position in the set.
type Entry struct {
	Index   int
	Ordinal int
	Text    string
}

// Entries expands the set into ordered entries.
func (s Set) Entries() []Entry {
	entries := make([]Entry, 0, len(s.Questions))
	for i, text := range s.Questions {
		entries = append(entries, Entry{Index: i, Ordinal: i + s.Offset, Text: text})
	}
	return entries
}

// Last returns the ordinal of the final question, or zero for an empty set.
func (s Set) Last() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return s.Offset + len(s.Questions) - 1
}
