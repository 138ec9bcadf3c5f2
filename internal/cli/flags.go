package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// commonFlags holds the options shared by every command that logs or prints.
type commonFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	color      string
	noColor    bool
}

func (c *commonFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&c.configPath, "config", "", "Path to .interviewdocs.yml (default: search upward)")
	flags.StringVar(&c.logLevel, "log-level", "", "Structured log level (debug|info|warn|error); off when empty")
	flags.StringVar(&c.logFormat, "log-format", "", "Structured log format (console|json|pretty)")
	flags.StringVar(&c.color, "color", "auto", "Color output (auto|always|never)")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable color output")
}

// parseFlags parses args and reports the exit code to return when parsing stops.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func newFlagSet(cmd *Command, stderr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	return flags
}
