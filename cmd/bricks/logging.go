package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger from --log-level and --log-file.
// Without a log file it writes to fallback. The returned func closes the
// log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
		Level:           level,
	})
	return logger, closeFn, nil
}
