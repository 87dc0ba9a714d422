// Package logging builds the charmbracelet/log logger used across the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is shown in front of every log line.
const Prefix = "todos"

// LevelForDebug maps the repeatable -d flag to a log level: none keeps Info,
// one or more enables Debug.
func LevelForDebug(debug int) log.Level {
	if debug > 0 {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// New returns a text logger on w without timestamps.
func New(w io.Writer, debug int) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           LevelForDebug(debug),
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          Prefix,
	})
}

// DebugBanner is the line echoed for the -d count.
func DebugBanner(debug int) string {
	switch debug {
	case 0:
		return "Debug mode is off"
	case 1:
		return "Debug mode is kind of on"
	case 2:
		return "Debug mode is on"
	default:
		return "Don't be crazy"
	}
}
