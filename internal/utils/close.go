package utils

import (
	"io"
	"log/slog"
)

// CloseWithLog closes c and logs any close error at warn level. It is used
// on response bodies where a close failure must not override the primary
// error already being returned.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
