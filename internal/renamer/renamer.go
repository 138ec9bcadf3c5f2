package renamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"interviewdocs/internal/filename"
	"interviewdocs/internal/logging"
)

// ErrTargetExists is recorded when the normalized name is already taken.
var ErrTargetExists = errors.New("target already exists")

// Options control a normalize pass.
type Options struct {
	// Dir is the directory to scan; empty means the working directory.
	Dir    string
	DryRun bool
}

// Action describes one file whose name needs normalizing.
type Action struct {
	From    string
	To      string
	Applied bool
	Err     error
}

// Result aggregates a normalize pass.
type Result struct {
	Actions []Action
	DryRun  bool
}

// Renamed counts applied renames.
func (r Result) Renamed() int {
	count := 0
	for _, action := range r.Actions {
		if action.Applied {
			count++
		}
	}
	return count
}

// Failed returns the actions that errored.
func (r Result) Failed() []Action {
	var failed []Action
	for _, action := range r.Actions {
		if action.Err != nil {
			failed = append(failed, action)
		}
	}
	return failed
}

// Err joins every per-file failure, or returns nil.
func (r Result) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for _, action := range failed {
		errs = append(errs, action.Err)
	}
	return errors.Join(errs...)
}

// Observer receives rename events.
type Observer interface {
	Renamed(Action)
	RenameFailed(Action)
	Complete(Result)
}

// Renamer replaces whitespace runs in Markdown filenames with underscores.
type Renamer struct {
	observer Observer
	logger   logging.Logger
	rename   func(from, to string) error
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithObserver registers an observer for rename events.
func WithObserver(observer Observer) Option {
	return func(r *Renamer) { r.observer = observer }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger logging.Logger) Option {
	return func(r *Renamer) { r.logger = logging.OrNoOp(logger) }
}

// New builds a Renamer.
func New(opts ...Option) *Renamer {
	r := &Renamer{logger: logging.NoOp(), rename: os.Rename}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize renames the immediate .md files of opts.Dir. Only a failure to
// list the directory is returned as an error; per-file failures are recorded
// on the result and the pass continues.
func (r *Renamer) Normalize(ctx context.Context, opts Options) (Result, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Error("rename.read_dir", "dir", dir, "error", err.Error())
		return Result{}, fmt.Errorf("read directory %s: %w", dir, err)
	}
	logger := logging.WithFields(r.logger, map[string]any{"dir": dir})

	result := Result{DryRun: opts.DryRun}
	for _, entry := range entries {
		name := entry.Name()
		if !filename.IsMarkdown(name) || isDir(dir, entry) {
			continue
		}
		target := filename.NormalizeWhitespace(name)
		if target == name {
			continue
		}
		action := Action{From: name, To: target}
		if err := ctx.Err(); err != nil {
			action.Err = fmt.Errorf("rename %s: %w", name, err)
			r.fail(logger, &result, action)
			continue
		}
		if opts.DryRun {
			result.Actions = append(result.Actions, action)
			continue
		}

		from := filepath.Join(dir, name)
		to := filepath.Join(dir, target)
		if _, err := os.Lstat(to); err == nil {
			action.Err = fmt.Errorf("rename %s: %w", name, ErrTargetExists)
			r.fail(logger, &result, action)
			continue
		}
		if err := r.rename(from, to); err != nil {
			action.Err = fmt.Errorf("rename %s: %w", name, err)
			r.fail(logger, &result, action)
			continue
		}
		action.Applied = true
		result.Actions = append(result.Actions, action)
		logger.Debug("rename.applied", "from", name, "to", target)
		if r.observer != nil {
			r.observer.Renamed(action)
		}
	}

	logger.Info("rename.complete", "renamed", result.Renamed(), "failed", len(result.Failed()))
	if r.observer != nil {
		r.observer.Complete(result)
	}
	return result, nil
}

func (r *Renamer) fail(logger logging.Logger, result *Result, action Action) {
	result.Actions = append(result.Actions, action)
	logger.Warn("rename.failed", "from", action.From, "error", action.Err.Error())
	if r.observer != nil {
		r.observer.RenameFailed(action)
	}
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
