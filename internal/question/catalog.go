package question

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed sets/*.yml
var builtinSets embed.FS

// Catalog returns the built-in question sets ordered by ID.
func Catalog() ([]Set, error) {
	entries, err := fs.ReadDir(builtinSets, "sets")
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	sets := make([]Set, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := path.Join("sets", entry.Name())
		data, err := builtinSets.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		set, err := ParseSet(data, FormatYAML)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if set.ID == "" {
			set.ID = strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		}
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets, nil
}

// CatalogSet looks up a built-in set by ID.
func CatalogSet(id string) (Set, error) {
	sets, err := Catalog()
	if err != nil {
		return Set{}, err
	}
	id = strings.TrimSpace(id)
	for _, set := range sets {
		if set.ID == id {
			return set, nil
		}
	}
	return Set{}, fmt.Errorf("unknown built-in set %q", id)
}

// CatalogSource returns the raw document for a built-in set.
func CatalogSource(id string) ([]byte, error) {
	data, err := builtinSets.ReadFile(path.Join("sets", strings.TrimSpace(id)+".yml"))
	if err != nil {
		return nil, fmt.Errorf("unknown built-in set %q", id)
	}
	return data, nil
}
