package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"interviewdocs/internal/config"
	"interviewdocs/internal/question"
)

func runValidate(cmd *Command) runFunc {
	return func(ctx context.Context, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		configPath := flags.String("config", "", "Path to .interviewdocs.yml (default: search upward)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		if flags.NArg() > 0 {
			if *configPath != "" {
				fmt.Fprintln(stderr, "invalid arguments: --config cannot be combined with set files")
				printCommandUsage(cmd, stderr)
				return ExitUsage
			}
			return validateSetFiles(flags.Args(), stdout, stderr)
		}

		path, err := resolveConfigPath(*configPath)
		if errors.Is(err, config.ErrNotFound) {
			fmt.Fprintln(stderr, "No set files given and no .interviewdocs.yml found.")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if err != nil {
			fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Config invalid:\n%v\n", wrapConfigError(err))
			return ExitError
		}
		fmt.Fprintf(stdout, "Config OK: %s (%d set(s))\n", path, len(cfg.Sets))
		return ExitOK
	}
}

func validateSetFiles(paths []string, stdout, stderr io.Writer) int {
	exit := ExitOK
	for _, path := range paths {
		set, err := validateSetFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "FAIL %s: %v\n", path, wrapSetError(err))
			exit = ExitError
			continue
		}
		fmt.Fprintf(stdout, "OK   %s (%d question(s), ordinals %02d-%02d)\n", path, len(set.Questions), set.Offset, set.Last())
	}
	return exit
}

func validateSetFile(path string) (question.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return question.Set{}, fmt.Errorf("read question set: %w", err)
	}
	format := question.FormatForPath(path)
	if err := question.ValidateSchema(data, format); err != nil {
		return question.Set{}, err
	}
	return question.ParseSet(data, format)
}
