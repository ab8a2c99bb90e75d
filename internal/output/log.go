// Package output provides terminal output utilities: structured logging,
// styled status rendering, constraint tables, and YAML-aware diffing
// between two analysis runs.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// LogConfig holds configuration for the logger.
type LogConfig struct {
	// Verbose enables debug-level logging and caller info.
	Verbose bool

	// NoColor disables styled terminal output (tables, log colors).
	NoColor bool
}

// logger is the global logger instance, reconfigured by SetupLogging.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// SetupLogging configures the global logger based on cfg.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ComponentLogger returns a child logger whose prefix is a component name.
func ComponentLogger(name string) *log.Logger {
	prefix := fmt.Sprintf("%s%s",
		styleDim.Render("c:"),
		lipgloss.NewStyle().Foreground(ColorCyan).Render(name),
	)
	return logger.WithPrefix(prefix)
}

func Debug(msg string, keyvals ...interface{}) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { logger.Error(msg, keyvals...) }

// Print writes msg to stdout without any formatting — used for the
// analysis result itself, kept separate from the log stream on stderr.
func Print(msg string) { os.Stdout.WriteString(msg) }

// Println is Print plus a trailing newline.
func Println(msg string) { os.Stdout.WriteString(msg + "\n") }

// Details prints supplementary multi-line content to stderr (e.g. a CUE
// validation error's full body, which doesn't fit the key-value log format).
func Details(msg string) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, msg)
}
