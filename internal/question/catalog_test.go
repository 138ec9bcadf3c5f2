package question

import (
	"strings"
	"testing"
)

func TestCatalogOffsets(t *testing.T) {
	sets, err := Catalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	want := map[string]struct{ offset, count int }{
		"closure-basic":          {1, 10},
		"closure-intermediate":   {11, 10},
		"closure-advanced":       {21, 15},
		"functions-intermediate": {19, 17},
		"functions-advanced":     {36, 25},
		"functions-bonus":        {61, 20},
		"hof-general":            {1, 7},
		"hof-map":                {8, 12},
		"hof-filter":             {20, 12},
		"hof-reduce":             {32, 14},
	}
	if len(sets) != len(want) {
		t.Fatalf("expected %d sets, got %d", len(want), len(sets))
	}
	for _, set := range sets {
		expected, ok := want[set.ID]
		if !ok {
			t.Fatalf("unexpected set %q", set.ID)
		}
		if set.Offset != expected.offset || len(set.Questions) != expected.count {
			t.Fatalf("%s: got offset %d count %d", set.ID, set.Offset, len(set.Questions))
		}
	}
	for i := 1; i < len(sets); i++ {
		if sets[i-1].ID > sets[i].ID {
			t.Fatalf("catalog not sorted: %q before %q", sets[i-1].ID, sets[i].ID)
		}
	}
}

func TestCatalogSetPreservesUnicode(t *testing.T) {
	set, err := CatalogSet("hof-filter")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	found := false
	for _, q := range set.Questions {
		if strings.Contains(q, "doesn’t") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected typographic apostrophe to survive")
	}
}

func TestCatalogSetUnknown(t *testing.T) {
	if _, err := CatalogSet("nope"); err == nil {
		t.Fatalf("expected unknown set error")
	}
}

func TestCatalogSourcesPassSchema(t *testing.T) {
	sets, err := Catalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, set := range sets {
		data, err := CatalogSource(set.ID)
		if err != nil {
			t.Fatalf("source %s: %v", set.ID, err)
		}
		if err := ValidateSchema(data, FormatYAML); err != nil {
			t.Fatalf("%s: %v", set.ID, err)
		}
	}
}
