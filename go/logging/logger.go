// Package logging builds the charmbracelet logger used by the commands.
//
// ASMCORN_LOG_LEVEL: debug, info, warn, error (default: warn)
// ASMCORN_LOG_PREFIX: prefix for log lines (default: "asmcorn")
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

func levelFromEnv(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	switch strings.ToLower(os.Getenv("ASMCORN_LOG_LEVEL")) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	}
	return log.WarnLevel
}

func NewLoggerWithWriter(w io.Writer, verbose bool) *log.Logger {
	prefix := os.Getenv("ASMCORN_LOG_PREFIX")
	if prefix == "" {
		prefix = "asmcorn"
	}
	return log.NewWithOptions(w, log.Options{
		Level:  levelFromEnv(verbose),
		Prefix: prefix,
	})
}

func NewLogger(verbose bool) *log.Logger {
	return NewLoggerWithWriter(os.Stderr, verbose)
}
