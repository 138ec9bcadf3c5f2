package cli

import (
	"context"
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type runFunc func(ctx context.Context, args []string, stdout, stderr io.Writer) int

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     runFunc
}

// Run executes the CLI without cancellation.
func Run(args []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdout, stderr)
}

// RunContext dispatches to a subcommand.
func RunContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(ctx, args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  interviewdocs <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"interviewdocs <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) runFunc) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands []*Command

func init() {
	commands = []*Command{
		command("emit", "Write numbered Markdown stubs for a question set", []string{
			"interviewdocs emit [options] <set.yml|set.json>...",
			"interviewdocs emit --builtin <id> [--dir <path>]",
			"interviewdocs emit --question <text> [--question <text>]... --offset <n>",
			"interviewdocs emit --config <path>",
		}, runEmit),
		command("rename", "Replace whitespace in Markdown filenames with underscores", []string{
			"interviewdocs rename [--dry-run] [dir]",
		}, runRename),
		command("list", "Audit the Markdown stubs in a directory", []string{
			"interviewdocs list [dir]",
		}, runList),
		command("sets", "List the built-in question sets", []string{
			"interviewdocs sets [--show <id>]",
		}, runSets),
		command("validate", "Validate question set files or the config", []string{
			"interviewdocs validate <set.yml|set.json>...",
			"interviewdocs validate --config <path>",
		}, runValidate),
		command("init", "Scaffold .interviewdocs.yml", []string{
			"interviewdocs init [--config <path>]",
		}, runInit),
	}
}
