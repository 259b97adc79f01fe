package utils

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// NewLogger builds the application logger. Logs go to LogFile when set and to fallback otherwise;
// the returned closer releases the file and is always safe to call.
func NewLogger(config Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := config.Level()
	if err != nil {
		return nil, nil, err
	}

	out, closer := fallback, func() error { return nil }
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", config.LogFile)
		}
		out, closer = f, f.Close
	}
	if out == nil {
		out = io.Discard
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}
