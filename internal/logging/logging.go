// Package logging builds the structured logger shared by the commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line written by the tool.
const Prefix = "playground"

// New returns a logger writing to w. Debug output is enabled when verbose is set.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
