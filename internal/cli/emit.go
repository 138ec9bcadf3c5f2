package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"interviewdocs/internal/config"
	"interviewdocs/internal/emitter"
	"interviewdocs/internal/filename"
	"interviewdocs/internal/logging"
	"interviewdocs/internal/question"
)

// emitJob is one question set bound to its output directory.
type emitJob struct {
	label string
	set   question.Set
	dir   string
	mkdir bool
}

type emitSettings struct {
	style       filename.Style
	noOverwrite bool
	logLevel    string
	logFormat   string
}

func runEmit(cmd *Command) runFunc {
	return func(ctx context.Context, args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		var common commonFlags
		common.register(flags)
		var questions stringList
		flags.Var(&questions, "question", "Inline question text (repeatable)")
		builtin := flags.String("builtin", "", "Emit a built-in set by id (see \"interviewdocs sets\")")
		offset := flags.Int("offset", 0, "Ordinal of the first question (default: the set's offset, or 1)")
		dir := flags.String("dir", "", "Output directory (default: working directory)")
		style := flags.String("style", "", "Filename style (plain|slug)")
		noOverwrite := flags.Bool("no-overwrite", false, "Skip files that already exist")
		dryRun := flags.Bool("dry-run", false, "Print filenames without writing")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *offset < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --offset must be >= 0")
			return ExitUsage
		}

		useColor, err := resolveColor(common.color, common.noColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		settings := emitSettings{noOverwrite: *noOverwrite, logLevel: common.logLevel, logFormat: common.logFormat}
		var jobs []emitJob
		adHoc := flags.NArg() > 0 || *builtin != "" || len(questions) > 0
		switch {
		case adHoc && common.configPath != "":
			fmt.Fprintln(stderr, "invalid arguments: --config cannot be combined with set files, --builtin, or --question")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		case adHoc:
			jobs, err = adHocJobs(flags.Args(), *builtin, questions, *dir)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load question set: %v\n", wrapSetError(err))
				return ExitError
			}
		default:
			path, err := resolveConfigPath(common.configPath)
			if errors.Is(err, config.ErrNotFound) {
				fmt.Fprintln(stderr, "No question source given and no .interviewdocs.yml found.")
				printCommandUsage(cmd, stderr)
				return ExitUsage
			}
			if err != nil {
				fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
				return ExitError
			}
			cfg, err := config.Load(path)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load config:\n%v\n", wrapConfigError(err))
				return ExitError
			}
			jobs, err = configJobs(cfg, config.RootFromConfigPath(path), *dir)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load question set: %v\n", wrapSetError(err))
				return ExitError
			}
			settings = mergeConfigSettings(settings, cfg, flags)
		}

		if *offset != 0 && len(jobs) > 1 {
			fmt.Fprintf(stderr, "invalid arguments: --offset applies to a single set, got %d\n", len(jobs))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if *style != "" || settings.style == "" {
			parsed, err := filename.ParseStyle(*style)
			if err != nil {
				fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
				return ExitUsage
			}
			settings.style = parsed
		}

		logger, err := newLogger(settings.logLevel, settings.logFormat, logging.EmitterModule)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		printer := &emitPrinter{stdout: stdout, stderr: stderr, palette: palette{color: useColor}, logger: logger}
		e := emitter.New(emitter.WithObserver(printer), emitter.WithLogger(logger))

		exit := ExitOK
		for _, job := range jobs {
			if len(jobs) > 1 {
				fmt.Fprintf(stdout, "==> %s (%s)\n", job.label, displayDir(job.dir))
			}
			if job.mkdir && !*dryRun && job.dir != "" {
				if err := os.MkdirAll(job.dir, 0o755); err != nil {
					fmt.Fprintf(stderr, "Failed to create %s: %v\n", job.dir, err)
					exit = ExitError
					continue
				}
			}
			result := e.EmitSet(ctx, job.set, emitter.Options{
				Dir:         job.dir,
				Offset:      *offset,
				Style:       settings.style,
				NoOverwrite: settings.noOverwrite,
				DryRun:      *dryRun,
			})
			if result.Err() != nil {
				exit = ExitError
			}
		}
		return exit
	}
}

func adHocJobs(files []string, builtin string, questions []string, dir string) ([]emitJob, error) {
	var jobs []emitJob
	for _, path := range files {
		set, err := question.LoadSet(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		jobs = append(jobs, emitJob{label: path, set: set, dir: dir})
	}
	if builtin != "" {
		set, err := question.CatalogSet(builtin)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, emitJob{label: "builtin:" + set.ID, set: set, dir: dir})
	}
	if len(questions) > 0 {
		set := question.Set{Version: 1, Offset: 1, Questions: questions}
		if _, err := question.NormalizeSet(set); err != nil {
			return nil, err
		}
		jobs = append(jobs, emitJob{label: "inline", set: set, dir: dir})
	}
	return jobs, nil
}

func configJobs(cfg config.Config, root, dirOverride string) ([]emitJob, error) {
	base := config.Resolve(root, cfg.OutputDir)
	if dirOverride != "" {
		base = dirOverride
	}
	jobs := make([]emitJob, 0, len(cfg.Sets))
	for _, entry := range cfg.Sets {
		var (
			set question.Set
			err error
		)
		if entry.Builtin != "" {
			set, err = question.CatalogSet(entry.Builtin)
		} else {
			set, err = question.LoadSet(config.Resolve(root, entry.File))
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Label(), err)
		}
		if entry.Offset > 0 {
			set.Offset = entry.Offset
		}
		jobs = append(jobs, emitJob{
			label: entry.Label(),
			set:   set,
			dir:   config.Resolve(base, entry.Dir),
			mkdir: true,
		})
	}
	return jobs, nil
}

// mergeConfigSettings applies config values where no flag was given.
func mergeConfigSettings(settings emitSettings, cfg config.Config, flags *flag.FlagSet) emitSettings {
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["no-overwrite"] {
		settings.noOverwrite = cfg.NoOverwrite
	}
	if !set["log-level"] {
		settings.logLevel = cfg.Log.Level
	}
	if !set["log-format"] {
		settings.logFormat = cfg.Log.Format
	}
	if style, err := filename.ParseStyle(cfg.Style); err == nil {
		settings.style = style
	}
	return settings
}

func resolveConfigPath(path string) (string, error) {
	if path == "" {
		return config.FindConfigPath("")
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %q is a directory", path)
	}
	return path, nil
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
