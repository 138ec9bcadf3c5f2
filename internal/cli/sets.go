package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"interviewdocs/internal/question"
)

func runSets(cmd *Command) runFunc {
	return func(ctx context.Context, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		show := flags.String("show", "", "Print the source of one built-in set")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "invalid arguments: unexpected argument %q\n", flags.Arg(0))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if *show != "" {
			source, err := question.CatalogSource(*show)
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return ExitError
			}
			_, _ = stdout.Write(source)
			return ExitOK
		}

		sets, err := question.Catalog()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load catalog: %v\n", wrapSetError(err))
			return ExitError
		}
		tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tORDINALS\tTITLE")
		for _, set := range sets {
			fmt.Fprintf(tw, "%s\t%02d-%02d\t%s\n", set.ID, set.Offset, set.Last(), set.Title)
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
