package cli

import (
	"fmt"
	"io"

	"interviewdocs/internal/emitter"
	"interviewdocs/internal/logging"
	"interviewdocs/internal/renamer"
)

// emitPrinter prints one line per created file and a closing summary.
type emitPrinter struct {
	stdout  io.Writer
	stderr  io.Writer
	palette palette
	logger  logging.Logger
}

func (p *emitPrinter) EntryCreated(action emitter.Action) {
	fmt.Fprintf(p.stdout, "%s %s\n", p.palette.created("Created:"), action.Filename)
}

func (p *emitPrinter) EntrySkipped(action emitter.Action) {
	fmt.Fprintf(p.stdout, "%s %s (already exists)\n", p.palette.skipped("Skipped:"), action.Filename)
}

func (p *emitPrinter) EntryFailed(action emitter.Action) {
	name := action.Filename
	if name == "" {
		name = fmt.Sprintf("entry %d", action.Index+1)
	}
	fmt.Fprintf(p.stderr, "%s %s: %v\n", p.palette.failure("Error writing"), name, action.Err)
	logging.OrNoOp(p.logger).Error("emit.entry_failed", "file", name, "error", wrapWriteError(action.Err))
}

func (p *emitPrinter) BatchComplete(result emitter.Result) {
	if result.DryRun {
		for _, action := range result.Actions {
			if action.Err == nil {
				fmt.Fprintf(p.stdout, "Would create: %s\n", action.Filename)
			}
		}
	}
	if failed := len(result.Failed()); failed > 0 {
		fmt.Fprintln(p.stdout, p.palette.summary(fmt.Sprintf("Completed with %d error(s).", failed)))
		return
	}
	if result.DryRun {
		fmt.Fprintln(p.stdout, p.palette.summary("Dry run complete; no files written."))
		return
	}
	fmt.Fprintln(p.stdout, p.palette.summary("All files created successfully."))
}

// renamePrinter prints one line per renamed file and a closing summary.
type renamePrinter struct {
	stdout  io.Writer
	stderr  io.Writer
	palette palette
	logger  logging.Logger
}

func (p *renamePrinter) Renamed(action renamer.Action) {
	fmt.Fprintf(p.stdout, "%s %s -> %s\n", p.palette.renamed("Renamed:"), action.From, action.To)
}

func (p *renamePrinter) RenameFailed(action renamer.Action) {
	fmt.Fprintf(p.stderr, "%s %s: %v\n", p.palette.failure("Error renaming file"), action.From, action.Err)
	logging.OrNoOp(p.logger).Error("rename.entry_failed", "file", action.From, "error", wrapRenameError(action.Err))
}

func (p *renamePrinter) Complete(result renamer.Result) {
	if result.DryRun {
		for _, action := range result.Actions {
			if action.Err == nil {
				fmt.Fprintf(p.stdout, "Would rename: %s -> %s\n", action.From, action.To)
			}
		}
		fmt.Fprintln(p.stdout, p.palette.summary(fmt.Sprintf("Dry run complete; %d file(s) would be renamed.", len(result.Actions)-len(result.Failed()))))
		return
	}
	line := fmt.Sprintf("Renamed %d file(s).", result.Renamed())
	if failed := len(result.Failed()); failed > 0 {
		line = fmt.Sprintf("Renamed %d file(s), %d error(s).", result.Renamed(), failed)
	}
	fmt.Fprintln(p.stdout, p.palette.summary(line))
}
