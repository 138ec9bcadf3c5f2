package cli

import (
	"context"
	"fmt"
	"io"

	"interviewdocs/internal/markdown"
)

func runList(cmd *Command) runFunc {
	return func(ctx context.Context, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		var common commonFlags
		common.register(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 1 {
			fmt.Fprintln(stderr, "invalid arguments: list accepts at most one directory")
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
		colors := palette{color: useColor}

		files, err := markdown.ScanDir(dir)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading directory: %v\n", wrapReadDirError(err))
			return ExitError
		}

		var drifted, broken int
		for _, file := range files {
			switch {
			case file.Err != nil:
				broken++
				fmt.Fprintf(stdout, "%s %s: %v\n", colors.failure("error"), file.Name, file.Err)
			case file.Consistent():
				fmt.Fprintf(stdout, "%s %s\n", colors.created("ok   "), file.Name)
			case file.Canonical == "":
				drifted++
				fmt.Fprintf(stdout, "%s %s\n", colors.skipped("other"), file.Name)
			default:
				drifted++
				fmt.Fprintf(stdout, "%s %s (expected %s)\n", colors.renamed("drift"), file.Name, file.Canonical)
			}
		}
		fmt.Fprintln(stdout, colors.summary(fmt.Sprintf("%d file(s), %d drifted, %d unreadable.", len(files), drifted, broken)))
		if broken > 0 {
			return ExitError
		}
		return ExitOK
	}
}
