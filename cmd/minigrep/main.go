package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

const programName = "minigrep"

// valueFlags take a separate value unless written as --flag=value.
var valueFlags = map[string]bool{
	"--config":       true,
	"--log-level":    true,
	"--log-encoding": true,
}

// invocation holds what kingpin collected from the command line.
type invocation struct {
	overrides  config.CLIOverrides
	positional []string
}

func main() {
	inv, err := parseArgs(os.Args[1:])
	kingpin.FatalIfError(err, "")

	os.Exit(run(inv, os.LookupEnv, os.Stdout, os.Stderr))
}

// cliValues points at the destinations kingpin fills while parsing.
type cliValues struct {
	configFile  *string
	logLevel    *string
	logEncoding *string
	positional  *[]string
}

func newKingpinApp() (*kingpin.Application, cliValues) {
	kingpinApp := kingpin.New(programName, "Search for a query in a file and print the matching lines.")
	values := cliValues{
		configFile:  kingpinApp.Flag("config", "Path to YAML configuration file").String(),
		logLevel:    kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String(),
		logEncoding: kingpinApp.Flag("log-encoding", "Log encoding (json, console)").String(),
		positional:  kingpinApp.Arg("args", "QUERY followed by FILE").Strings(),
	}
	return kingpinApp, values
}

// parseArgs hands the leading flags to kingpin and passes everything from
// the first positional argument onward through untouched, so queries such
// as "@name" or "-v" reach config.Build verbatim.
func parseArgs(args []string) (invocation, error) {
	kingpinApp, values := newKingpinApp()

	flags, rest := splitArgs(args)
	if len(rest) > 0 {
		flags = append(flags, "--")
		flags = append(flags, rest...)
	}
	if _, err := kingpinApp.Parse(flags); err != nil {
		return invocation{}, err
	}

	return invocation{
		overrides: config.CLIOverrides{
			ConfigFile:  *values.configFile,
			LogLevel:    values.logLevel,
			LogEncoding: values.logEncoding,
		},
		positional: *values.positional,
	}, nil
}

// splitArgs separates the leading long flags from the positional arguments.
// A bare "--" ends the flags and is dropped.
func splitArgs(args []string) (flags, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flags, args[i+1:]
		case !strings.HasPrefix(arg, "--"):
			return flags, args[i:]
		}
		flags = append(flags, arg)
		if valueFlags[arg] && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, nil
}

func run(inv invocation, lookupEnv config.LookupFunc, stdout, stderr io.Writer) int {
	settings, err := config.Load(&inv.overrides, lookupEnv)
	if err != nil {
		fmt.Fprintf(stderr, "Problem loading settings: %v\n", err)
		return 1
	}

	logger, err := logging.New(settings.LogLevel, settings.LogEncoding, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Problem initializing logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	args := append([]string{programName}, inv.positional...)
	cfg, err := config.Build(args, lookupEnv)
	if err != nil {
		logger.Debug("invalid arguments", zap.Error(err))
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		fmt.Fprintln(stderr, config.HelpText(programName))
		return 1
	}

	app := application.New(logger, application.WithOutput(stdout))
	if err := app.Run(cfg); err != nil {
		var ioErr *application.IOError
		if errors.As(err, &ioErr) {
			logger.Debug("run failed", zap.String("op", ioErr.Op), zap.String("path", ioErr.Path), zap.Error(ioErr.Err))
		}
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return 1
	}

	return 0
}
