package bzbcodec

import (
	"log/slog"

	"github.com/chronos-tachyon/bzbcodec/deflate"
)

// Global logger for all codecs
var log = slog.Default()

// SetLogger configures the global logger, including the one used by the
// deflate package when it is called directly.
func SetLogger(l *slog.Logger) {
	log = l
	deflate.SetLogger(l)
}
