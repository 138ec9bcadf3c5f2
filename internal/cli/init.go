package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"interviewdocs/internal/config"
)

func runInit(cmd *Command) runFunc {
	return func(ctx context.Context, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		configPath := flags.String("config", "", "Where to write the config (default: ./.interviewdocs.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "invalid arguments: unexpected argument %q\n", flags.Arg(0))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		path := *configPath
		if path == "" {
			cwd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Failed to resolve working directory: %v\n", err)
				return ExitError
			}
			path = filepath.Join(cwd, config.ConfigFileName)
		}
		if err := config.Scaffold(path); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
