package emitter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"interviewdocs/internal/filename"
	"interviewdocs/internal/logging"
	"interviewdocs/internal/markdown"
	"interviewdocs/internal/question"
)

// ErrExists marks an entry skipped because its file already exists.
var ErrExists = errors.New("file already exists")

// Options control a single emit batch.
type Options struct {
	// Dir is the output directory; empty means the working directory.
	Dir string
	// Offset is the ordinal of the first question; EmitSet uses the set offset when zero.
	Offset int
	Style  filename.Style
	// NoOverwrite skips files that already exist instead of replacing them.
	NoOverwrite bool
	DryRun      bool
}

// Action is the outcome for one question.
type Action struct {
	Index    int
	Question string
	Filename string
	Path     string
	Applied  bool
	Skipped  bool
	Err      error
}

// Result aggregates a batch.
type Result struct {
	BatchID string
	Actions []Action
	DryRun  bool
}

// Created counts entries whose file was written.
func (r Result) Created() int {
	count := 0
	for _, action := range r.Actions {
		if action.Applied {
			count++
		}
	}
	return count
}

// Failed returns the entries that errored.
func (r Result) Failed() []Action {
	var failed []Action
	for _, action := range r.Actions {
		if action.Err != nil {
			failed = append(failed, action)
		}
	}
	return failed
}

// Err joins every per-entry failure, or returns nil.
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

// Observer receives per-entry and batch completion events.
type Observer interface {
	EntryCreated(Action)
	EntrySkipped(Action)
	EntryFailed(Action)
	BatchComplete(Result)
}

// Emitter writes numbered Markdown stubs.
type Emitter struct {
	observer Observer
	logger   logging.Logger
	newID    func() string
	write    func(path string, data []byte) error
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithObserver registers an observer for batch events.
func WithObserver(observer Observer) Option {
	return func(e *Emitter) { e.observer = observer }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger logging.Logger) Option {
	return func(e *Emitter) { e.logger = logging.OrNoOp(logger) }
}

// New builds an Emitter.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		logger: logging.NoOp(),
		newID:  uuid.NewString,
		write:  writeStub,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EmitSet emits a loaded question set.
func (e *Emitter) EmitSet(ctx context.Context, set question.Set, opts Options) Result {
	if opts.Offset == 0 {
		opts.Offset = set.Offset
	}
	return e.Emit(ctx, set.Questions, opts)
}

// Emit writes one file per question in order. A failed entry never stops the
// batch; a cancelled context fails the remaining entries.
func (e *Emitter) Emit(ctx context.Context, questions []string, opts Options) Result {
	if opts.Offset == 0 {
		opts.Offset = 1
	}
	result := Result{BatchID: e.newID(), DryRun: opts.DryRun}
	logger := logging.WithFields(e.logger, map[string]any{
		"batch_id": result.BatchID,
		"dir":      opts.Dir,
		"offset":   opts.Offset,
	})
	logger.Debug("emit.start", "entries", len(questions))

	for index, raw := range questions {
		action := Action{Index: index, Question: raw}
		if err := ctx.Err(); err != nil {
			action.Err = fmt.Errorf("entry %d: %w", index+opts.Offset, err)
			e.fail(logger, &result, action)
			continue
		}

		name, err := filename.BuildStyled(index, opts.Offset, raw, opts.Style)
		if err != nil {
			action.Err = fmt.Errorf("entry %d: %w", index+opts.Offset, err)
			e.fail(logger, &result, action)
			continue
		}
		action.Filename = name
		action.Path = filepath.Join(opts.Dir, name)

		if opts.DryRun {
			result.Actions = append(result.Actions, action)
			continue
		}
		if opts.NoOverwrite {
			if _, err := os.Lstat(action.Path); err == nil {
				action.Skipped = true
				logger.Info("emit.skip", "file", name, "reason", ErrExists.Error())
				result.Actions = append(result.Actions, action)
				if e.observer != nil {
					e.observer.EntrySkipped(action)
				}
				continue
			}
		}
		if err := e.write(action.Path, markdown.RenderStub(raw)); err != nil {
			action.Err = fmt.Errorf("write %s: %w", name, err)
			e.fail(logger, &result, action)
			continue
		}
		action.Applied = true
		result.Actions = append(result.Actions, action)
		logger.Debug("emit.created", "file", name)
		if e.observer != nil {
			e.observer.EntryCreated(action)
		}
	}

	logger.Info("emit.complete", "created", result.Created(), "failed", len(result.Failed()))
	if e.observer != nil {
		e.observer.BatchComplete(result)
	}
	return result
}

func (e *Emitter) fail(logger logging.Logger, result *Result, action Action) {
	result.Actions = append(result.Actions, action)
	logger.Warn("emit.failed", "index", action.Index, "error", action.Err.Error())
	if e.observer != nil {
		e.observer.EntryFailed(action)
	}
}

func writeStub(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
