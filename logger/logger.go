package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	log    zerolog.Logger
	closer io.Closer
)

// Options controls where log output goes and which secrets are scrubbed from it.
type Options struct {
	LogFile string   // Append JSON logs to this file instead of stdout
	Pretty  bool     // Human-readable console output (only valid when LogFile is empty)
	Level   string   // debug, info, warn, error, trace (default: info)
	Secrets []string // Values masked in every emitted log line

	// Out overrides stdout as the destination when LogFile is empty.
	Out io.Writer
}

// InitWithOptions initializes the logger with the specified options.
// If LogFile is empty, logs to stdout (or Out when set).
// If Pretty is true, uses ConsoleWriter for human-readable output (only valid when LogFile is empty).
// Every sink is wrapped in a RedactingWriter built from Secrets.
func InitWithOptions(opts Options) (zerolog.Logger, error) {
	if opts.LogFile != "" && opts.Pretty {
		return zerolog.Logger{}, fmt.Errorf("logfile and pretty are mutually exclusive")
	}
	if err := Close(); err != nil {
		return zerolog.Logger{}, err
	}

	level := parseLogLevel(opts.Level)

	stdout := opts.Out
	if stdout == nil {
		stdout = os.Stdout
	}

	var output io.Writer

	switch {
	case opts.LogFile != "":
		//nolint:gosec // G304: User-specified log file path is intentional
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to open log file %s: %w", opts.LogFile, err)
		}
		closer = file
		output = NewRedactingWriter(file, opts.Secrets...)
	case opts.Pretty:
		output = zerolog.ConsoleWriter{
			Out:        NewRedactingWriter(stdout, opts.Secrets...),
			TimeFormat: "2006-01-02 15:04:05.000",
		}
	default:
		output = NewRedactingWriter(stdout, opts.Secrets...)
	}

	log = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	switch {
	case opts.LogFile != "":
		log.Debug().Str("path", opts.LogFile).Str("level", level.String()).Msg("Logger initialized")
	case opts.Pretty:
		log.Debug().Str("output", "stdout").Str("format", "pretty").Str("level", level.String()).Msg("Logger initialized")
	default:
		log.Debug().Str("output", "stdout").Str("level", level.String()).Msg("Logger initialized")
	}

	return log, nil
}

// Close closes the log file opened by InitWithOptions, if any. It is safe to
// call more than once.
func Close() error {
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Helper functions
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
