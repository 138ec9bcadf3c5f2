package cli

import (
	"context"
	"fmt"
	"io"

	"interviewdocs/internal/logging"
	"interviewdocs/internal/renamer"
)

func runRename(cmd *Command) runFunc {
	return func(ctx context.Context, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		var common commonFlags
		common.register(flags)
		dryRun := flags.Bool("dry-run", false, "Print planned renames without applying them")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 1 {
			fmt.Fprintln(stderr, "invalid arguments: rename accepts at most one directory")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		dir := "."
		if flags.NArg() == 1 {
			dir = flags.Arg(0)
		}

		useColor, err := resolveColor(common.color, common.noColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		logger, err := newLogger(common.logLevel, common.logFormat, logging.RenamerModule)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		printer := &renamePrinter{stdout: stdout, stderr: stderr, palette: palette{color: useColor}, logger: logger}
		r := renamer.New(renamer.WithObserver(printer), renamer.WithLogger(logger))
		result, err := r.Normalize(ctx, renamer.Options{Dir: dir, DryRun: *dryRun})
		if err != nil {
			wrapped := wrapReadDirError(err)
			fmt.Fprintf(stderr, "Error reading directory: %v\n", err)
			logger.Error("rename.read_dir_failed", "dir", dir, "error", wrapped)
			return ExitError
		}
		if result.Err() != nil {
			return ExitError
		}
		return ExitOK
	}
}
