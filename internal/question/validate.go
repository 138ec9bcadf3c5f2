package question

import (
	"fmt"
	"strings"

	"interviewdocs/internal/validation"
)

// NormalizeSet trims metadata and validates a question set.
// Question text is kept byte-for-byte; only blank entries are rejected.
func NormalizeSet(set Set) (Set, error) {
	collector := validation.NewCollector("question set")
	if set.Version == 0 {
		collector.Add("version", "is required")
	} else if set.Version != 1 {
		collector.Add("version", fmt.Sprintf("unsupported version %d", set.Version))
	}
	if set.Offset < 1 {
		collector.Add("offset", "must be at least 1")
	}
	set.ID = strings.TrimSpace(set.ID)
	set.Title = strings.TrimSpace(set.Title)

	if len(set.Questions) == 0 {
		collector.Add("questions", "must include at least one entry")
	}
	for i, text := range set.Questions {
		if strings.TrimSpace(text) == "" {
			collector.Add(fmt.Sprintf("questions[%d]", i), "is required")
		}
	}

	if err := collector.Result(); err != nil {
		return Set{}, err
	}
	return set, nil
}
