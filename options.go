package bzbcodec

import (
	"log/slog"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
	"github.com/chronos-tachyon/bzbcodec/deflate"
	"github.com/chronos-tachyon/bzbcodec/lz77"
	"github.com/chronos-tachyon/bzbcodec/lzw"
)

// config holds internal configuration
type config struct {
	MaxOffset    int
	MaxLength    int
	ChunkSize    int
	AlphabetSize int
	Checksums    bool
	Logger       *slog.Logger
}

// Option configures a Codec
type Option interface {
	apply(*config)
}

// funcOpt wraps a function as an Option
type funcOpt func(*config)

func (f funcOpt) apply(c *config) {
	f(c)
}

// WithMaxOffset sets the LZ77 window size (default: 255, max 65535)
// Applies to lz77 and deflate.
func WithMaxOffset(n int) Option {
	return funcOpt(func(c *config) {
		c.MaxOffset = n
	})
}

// WithMaxLength sets the longest LZ77 codeword (default: 254, max 65535)
// Applies to lz77 and deflate.
func WithMaxLength(n int) Option {
	return funcOpt(func(c *config) {
		c.MaxLength = n
	})
}

// WithChunkSize sets the deflate chunk size in symbols (default: 65536)
func WithChunkSize(n int) Option {
	return funcOpt(func(c *config) {
		c.ChunkSize = n
	})
}

// WithAlphabetSize sets the LZW seed alphabet (default: 256)
// Symbols must fall in [0, n).  Use 65536 for 16-bit unsigned samples.
func WithAlphabetSize(n int) Option {
	return funcOpt(func(c *config) {
		c.AlphabetSize = n
	})
}

// WithChecksums enables/disables xxhash64 chunk checksums (default: true)
// Applies to deflate.
func WithChecksums(enabled bool) Option {
	return funcOpt(func(c *config) {
		c.Checksums = enabled
	})
}

// WithLogger sets the logger for this codec (default: the global logger)
func WithLogger(l *slog.Logger) Option {
	return funcOpt(func(c *config) {
		c.Logger = l
	})
}

// defaultConfig returns sensible defaults
func defaultConfig() config {
	return config{
		MaxOffset:    lz77.DefaultMaxOffset,
		MaxLength:    lz77.DefaultMaxLength,
		ChunkSize:    deflate.DefaultChunkSize,
		AlphabetSize: lzw.DefaultAlphabet,
		Checksums:    true,
	}
}

func (c config) validate() error {
	if err := lz77.ValidateBounds(c.MaxOffset, c.MaxLength); err != nil {
		return err
	}
	if c.ChunkSize < 1 {
		return codecerr.Configf("chunk size %d must be positive", c.ChunkSize)
	}
	if c.AlphabetSize < 1 {
		return codecerr.Configf("alphabet size %d must be positive", c.AlphabetSize)
	}
	return nil
}

func (c config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log
}

func (c config) deflateOptions() deflate.Options {
	return deflate.Options{
		ChunkSize: c.ChunkSize,
		MaxOffset: c.MaxOffset,
		MaxLength: c.MaxLength,
		Checksums: c.Checksums,
		Logger:    c.logger(),
	}
}
