// Package logging builds the diagnostic logger used by both entry points.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger writing to w whose level follows the -v count:
// warnings by default, then info, debug and trace.
func New(w io.Writer, verbosity int) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "detect-secrets",
		Level:  Level(verbosity),
		Output: w,
	})
}

func Level(verbosity int) hclog.Level {
	switch {
	case verbosity <= 0:
		return hclog.Warn
	case verbosity == 1:
		return hclog.Info
	case verbosity == 2:
		return hclog.Debug
	}
	return hclog.Trace
}
