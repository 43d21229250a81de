// Package logging configures the severity-filtered logger shared by the
// driver and the converters.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// TraceLevel sits below debug; charmbracelet/log has no level of its own for it.
const TraceLevel = log.DebugLevel - 4

// DefaultVerbosity is the verbosity used when none is given: errors and fatals.
const DefaultVerbosity = 1

var verbosityLevels = []log.Level{
	log.FatalLevel,
	log.ErrorLevel,
	log.WarnLevel,
	log.InfoLevel,
	log.DebugLevel,
	TraceLevel,
}

// New returns a logger writing to w, filtered at the default verbosity.
func New(w io.Writer) *log.Logger {
	level, _ := Verbosity(DefaultVerbosity)
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	styles := log.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRACE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("63"))
	l.SetStyles(styles)
	return l
}

// Verbosity maps 0..5 to fatal, error, warn, info, debug and trace.
func Verbosity(k int) (log.Level, bool) {
	if k < 0 || k >= len(verbosityLevels) {
		return 0, false
	}
	return verbosityLevels[k], true
}

// SetFormat switches l between the text, json and logfmt formatters.
func SetFormat(l *log.Logger, format string) error {
	switch format {
	case "", "text":
		l.SetFormatter(log.TextFormatter)
	case "json":
		l.SetFormatter(log.JSONFormatter)
	case "logfmt":
		l.SetFormatter(log.LogfmtFormatter)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// Fatal logs at fatal level without exiting the process.
func Fatal(l *log.Logger, msg string, keyvals ...any) {
	l.Log(log.FatalLevel, msg, keyvals...)
}

func Trace(l *log.Logger, msg string, keyvals ...any) {
	l.Log(TraceLevel, msg, keyvals...)
}
