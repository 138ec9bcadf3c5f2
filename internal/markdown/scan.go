package markdown

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"interviewdocs/internal/filename"
)

// FileInfo describes one Markdown file found by ScanDir.
type FileInfo struct {
	Name string
	// Ordinal is the numeric prefix, or -1 when the name has none.
	Ordinal int
	Title   string
	// Canonical is the name the emitter would produce for Ordinal and Title.
	Canonical string
	Err       error
}

// Consistent reports whether the file still carries its emitted name.
func (f FileInfo) Consistent() bool {
	return f.Err == nil && f.Canonical != "" && f.Canonical == f.Name
}

// ScanDir inspects the immediate .md files of dir in name order.
func ScanDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !filename.IsMarkdown(entry.Name()) || isDir(dir, entry) {
			continue
		}
		info := FileInfo{Name: entry.Name(), Ordinal: ParseOrdinal(entry.Name())}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			info.Err = err
			files = append(files, info)
			continue
		}
		doc, err := Inspect(data)
		if err != nil {
			info.Err = err
			files = append(files, info)
			continue
		}
		info.Title = doc.Title
		if info.Ordinal >= 0 && doc.Title != "" {
			info.Canonical = filename.Build(info.Ordinal, 0, doc.Title)
		}
		files = append(files, info)
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ParseOrdinal reads the leading "NN." prefix of a generated filename.
func ParseOrdinal(name string) int {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 || end >= len(name) || name[end] != '.' {
		return -1
	}
	value, err := strconv.Atoi(name[:end])
	if err != nil {
		return -1
	}
	return value
}

// isDir reports whether entry is a directory or a symlink that resolves to one.
func isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
