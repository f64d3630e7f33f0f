// Package main provides the CLI entrypoint for filament-mapper.
//
// filament-mapper maps the filaments of a print project onto the material
// slots of a multi-material printer:
//   - Loads the project filaments and the printer profile from YAML
//   - Suggests a mapping (positional default or auto-match)
//   - Applies operator overrides and reports shared slots
//   - Writes the committed mapping into a job mapping file
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"filament-mapper/internal/assign"
	"filament-mapper/internal/filament"
	"filament-mapper/internal/jobconfig"
	"filament-mapper/internal/mapping"
	"filament-mapper/internal/printer"
	"filament-mapper/internal/render"
)

// Version can be set during build time.
var Version = "dev"

const (
	exitConflicts = 1
	exitUsage     = 2
)

// exitError carries a process exit code alongside the message.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usageError(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}

		os.Exit(1)
	}
}

// options holds the parsed command-line flags.
type options struct {
	projectPath string
	printerPath string
	slots       int
	strategy    string
	sets        []string
	values      string
	loadPath    string
	outputPath  string
	strict      bool
	noColor     bool
	logLevel    string
	showVersion bool
	showHelp    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	var opts options

	flagSet := pflag.NewFlagSet("filament-mapper", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.projectPath, "project", "", "path to the project filaments YAML file (required)")
	flagSet.StringVar(&opts.printerPath, "printer", "", "path to the printer profile YAML file")
	flagSet.IntVar(&opts.slots, "slots", 0, "override the printer slot count (clamped to 1..64)")
	flagSet.StringVar(&opts.strategy, "strategy", "default", "initial mapping: default or auto")
	flagSet.StringArrayVar(&opts.sets, "set", nil, "assign one filament, as position=slot (repeatable)")
	flagSet.StringVar(&opts.values, "mapping", "", "comma-separated slots applied in filament order, e.g. 1,2,1")
	flagSet.StringVar(&opts.loadPath, "load", "", "resume from a previously written job mapping file")
	flagSet.StringVarP(&opts.outputPath, "output", "o", "", "write the committed mapping to this file")
	flagSet.BoolVar(&opts.strict, "strict", false, "exit with status 1 when slots are shared")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flagSet.BoolVarP(&opts.showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.showHelp = true
			return &opts, flagSet, nil
		}

		return nil, flagSet, usageError("%v", err)
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, usageError("unexpected argument: %s", rest[0])
	}

	return &opts, flagSet, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, flagSet, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "filament-mapper %s\n", Version)
		return nil
	}

	if opts.showHelp {
		fmt.Fprintln(stdout, "Usage: filament-mapper --project <file> [flags]")
		fmt.Fprint(stdout, flagSet.FlagUsages())

		return nil
	}

	level, err := parseLogLevel(opts.logLevel)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.projectPath == "" {
		return usageError("--project is required")
	}

	strategy, err := assign.ParseStrategy(opts.strategy)
	if err != nil {
		return usageError("%v", err)
	}

	project, err := filament.LoadFile(opts.projectPath)
	if err != nil {
		return usageError("%v", err)
	}

	if diags := filament.Validate(project); !diags.IsValid() {
		return usageError("invalid project %s: %v", opts.projectPath, diags.Error())
	}

	profile, slotCount, err := resolveSlots(opts, logger)
	if err != nil {
		return err
	}

	logger.Info("mapping session started",
		"project", project.Name,
		"filaments", len(project.Filaments),
		"slots", slotCount,
		"strategy", strategy.String(),
	)

	store, err := mapping.New(project.Filaments, slotCount)
	if err != nil {
		return usageError("%v", err)
	}

	if err := store.Apply(strategy); err != nil {
		return usageError("%v", err)
	}

	if err := applyOverrides(store, opts, logger); err != nil {
		return err
	}

	for _, diag := range store.Diagnostics().Infos {
		logger.Warn("slot value ignored", "diagnostic", diag.String())
	}

	renderer := render.New(stdout, !opts.noColor)
	fmt.Fprint(stdout, renderer.Session(store))

	if opts.outputPath != "" {
		printerName := ""
		if profile != nil {
			printerName = profile.Name
		}

		if err := jobconfig.WriteFile(jobconfig.Export(store, printerName), opts.outputPath); err != nil {
			return err
		}

		logger.Info("job mapping written", "path", opts.outputPath, "conflicts", store.Conflicts())
	}

	if opts.strict && store.HasConflicts() {
		return &exitError{code: exitConflicts, err: fmt.Errorf("slots shared: %v", store.Conflicts())}
	}

	return nil
}

// resolveSlots determines the slot count from --slots and the printer
// profile. A profile that does not support filament mapping is refused
// unless --slots overrides it.
func resolveSlots(opts *options, logger *slog.Logger) (*printer.Profile, int, error) {
	var profile *printer.Profile

	if opts.printerPath != "" {
		var err error

		profile, err = printer.LoadFile(opts.printerPath)
		if err != nil {
			return nil, 0, usageError("%v", err)
		}

		if !profile.SupportsMapping() && opts.slots == 0 {
			return nil, 0, usageError("printer %q does not support filament mapping", profile.Name)
		}
	}

	if opts.slots != 0 {
		slots := printer.ClampSlotCount(opts.slots)
		if slots != opts.slots {
			logger.Warn("slot count clamped", "requested", opts.slots, "using", slots)
		}

		return profile, slots, nil
	}

	return profile, profile.SlotCount(), nil
}

// applyOverrides applies --load, --mapping and --set, in that order.
func applyOverrides(store *mapping.Store, opts *options, logger *slog.Logger) error {
	if opts.loadPath != "" {
		job, err := jobconfig.LoadFile(opts.loadPath)
		if err != nil {
			return usageError("%v", err)
		}

		if job.SlotCount != 0 && job.SlotCount != store.SlotCount() {
			logger.Warn("saved mapping was made for a different slot count",
				"saved", job.SlotCount, "current", store.SlotCount())
		}

		store.SetMapping(job.Values())
	}

	if opts.values != "" {
		values, err := parseValues(opts.values)
		if err != nil {
			return err
		}

		store.SetMapping(values)
	}

	for _, set := range opts.sets {
		position, slot, err := parseSet(set)
		if err != nil {
			return err
		}

		if err := store.SetSlot(position, slot); err != nil {
			return usageError("--set %s: %v", set, err)
		}

		logger.Debug("slot set", "filament", position, "slot", slot)
	}

	return nil
}

func parseValues(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))

	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, usageError("--mapping: invalid slot %q", part)
		}

		values[i] = v
	}

	return values, nil
}

func parseSet(s string) (int, int, error) {
	positionText, slotText, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, usageError("--set %q: expected position=slot", s)
	}

	position, err := strconv.Atoi(strings.TrimSpace(positionText))
	if err != nil {
		return 0, 0, usageError("--set %q: invalid position", s)
	}

	slot, err := strconv.Atoi(strings.TrimSpace(slotText))
	if err != nil {
		return 0, 0, usageError("--set %q: invalid slot", s)
	}

	return position, slot, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, usageError("--log-level: %v", err)
	}

	return level, nil
}
