package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/conductor/internal/app"
	"github.com/specialistvlad/conductor/internal/publish"
)

// Version is printed by -version.
const Version = "0.0.0 -- Use at your own risk!"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("conductor", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Conductor - A Ticket-To-Ride map loader.

Usage:
  conductor [options] [MAP_PATH]

Arguments:
  MAP_PATH
    Path to a .json route list, a .hcl file or directory of .hcl files,
    or a SQLite database (.db, .sqlite, .sqlite3).

Options:
`)
		flagSet.PrintDefaults()
	}

	mapFlag := flagSet.String("map", "", "Path to the map definition.")
	mFlag := flagSet.String("m", "", "Path to the map definition (shorthand).")
	cityFlag := flagSet.String("city", "", "Print only this city and its routes.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io endpoint to publish the map to. Empty disables publishing.")
	publishNamespaceFlag := flagSet.String("publish-namespace", "/", "socket.io namespace used for publishing.")
	publishEventFlag := flagSet.String("publish-event", "map", "Event name the map is emitted on.")
	publishAckFlag := flagSet.String("publish-ack-event", "map:ack", "Event the server sends to acknowledge the map.")
	publishTimeoutFlag := flagSet.Duration("publish-timeout", publish.DefaultTimeout, "Maximum time to wait for the acknowledgement.")
	insecureFlag := flagSet.Bool("insecure-skip-verify", false, "Skip TLS certificate verification when publishing.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, Version)
		return nil, true, nil
	}

	path := ""
	if *mapFlag != "" {
		path = *mapFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Map path determined.", "path", path)

	if path == "" {
		slog.Debug("No map path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one map path, got %d", flagSet.NArg())}
	}
	if *mapFlag != "" && *mFlag != "" {
		return nil, false, &ExitError{Code: 2, Message: "-map and -m are mutually exclusive"}
	}
	if (*mapFlag != "" || *mFlag != "") && flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("map path given both as flag and as argument %q", flagSet.Arg(0))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		MapPath:            path,
		City:               *cityFlag,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
		PublishURL:         *publishURLFlag,
		PublishNamespace:   *publishNamespaceFlag,
		PublishEvent:       *publishEventFlag,
		PublishAckEvent:    *publishAckFlag,
		PublishTimeout:     *publishTimeoutFlag,
		InsecureSkipVerify: *insecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
