package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/enginegrid/internal/app"
)

// DefaultInputPath is read when no schematic path is given.
const DefaultInputPath = "data.txt"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("enginegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
EngineGrid - reads an engine schematic and prints two totals:

  Task 1  the sum of every number touching a symbol (diagonals count)
  Task 2  the sum of gear ratios; a gear is a '*' next to exactly two
          numbers and its ratio is their product

Usage:
  enginegrid [options] [SCHEMATIC_PATH]

Arguments:
  SCHEMATIC_PATH
    Text file with one schematic row per line, all rows the same width.
    Defaults to %s in the working directory.

Options:
`, DefaultInputPath)
		flagSet.PrintDefaults()
	}

	flagSet.String("input", "", "Path to the schematic file.")
	flagSet.String("i", "", "Path to the schematic file (shorthand).")
	showGrid := flagSet.Bool("show-grid", false, "Echo the schematic rows before the task totals.")
	maskOut := flagSet.String("mask-out", "", "Dump the symbol-adjacency mask as rows of 0/1 to this file.")
	logFormat := flagSet.String("log-format", "text", "Log output format on stderr. Options: 'text' or 'json'.")
	logLevel := flagSet.String("log-level", "info", "Logging level; 'debug' also lists skipped gears. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}

	path, err := schematicPath(flagSet)
	if err != nil {
		return nil, false, err
	}

	format, level, err := logSettings(*logFormat, *logLevel)
	if err != nil {
		return nil, false, err
	}

	config, err := app.NewConfig(app.Config{
		InputPath: path,
		LogFormat: format,
		LogLevel:  level,
		ShowGrid:  *showGrid,
		MaskPath:  *maskOut,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("Schematic run configured.", "input", config.InputPath, "show_grid", config.ShowGrid, "mask_out", config.MaskPath)
	return config, false, nil
}

// schematicPath picks the input from -input, -i or the single positional
// argument, in that order. Two different paths are a usage error.
func schematicPath(flagSet *flag.FlagSet) (string, error) {
	var fromFlag string
	flagSet.Visit(func(f *flag.Flag) {
		// Visit walks in lexical order, so -input wins over -i.
		if f.Name == "i" || f.Name == "input" {
			fromFlag = f.Value.String()
		}
	})

	switch {
	case flagSet.NArg() > 1:
		return "", usageError("expected one schematic path, got %d", flagSet.NArg())
	case fromFlag != "" && flagSet.NArg() == 1 && flagSet.Arg(0) != fromFlag:
		return "", usageError("schematic path given twice: %q and %q", fromFlag, flagSet.Arg(0))
	case fromFlag != "":
		return fromFlag, nil
	case flagSet.NArg() == 1:
		return flagSet.Arg(0), nil
	}
	slog.Debug("No schematic path given, using the default.", "path", DefaultInputPath)
	return DefaultInputPath, nil
}

func logSettings(format, level string) (string, string, error) {
	format, level = strings.ToLower(format), strings.ToLower(level)
	if format != "text" && format != "json" {
		return "", "", usageError("invalid log-format %q: must be 'text' or 'json'", format)
	}
	switch level {
	case "debug", "info", "warn", "error":
		return format, level, nil
	}
	return "", "", usageError("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
}
