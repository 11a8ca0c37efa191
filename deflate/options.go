package deflate

import (
	"log/slog"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
	"github.com/chronos-tachyon/bzbcodec/lz77"
)

const (
	// DefaultChunkSize is the number of input symbols per chunk.
	DefaultChunkSize = 64 * 1024

	// storedBitsPerSymbol is the threshold for keeping a chunk coded:
	// the coded form must cost fewer bits than this times the chunk
	// length.
	storedBitsPerSymbol = 5
)

// Options configures Encode.
type Options struct {
	ChunkSize int
	MaxOffset int
	MaxLength int

	// Checksums attaches an xxhash64 of each chunk's symbols, verified
	// by Decode.
	Checksums bool

	// Logger receives per-chunk debug records.  Nil means the package
	// logger.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
		MaxOffset: lz77.DefaultMaxOffset,
		MaxLength: lz77.DefaultMaxLength,
		Checksums: true,
	}
}

// Validate reports a configuration error for unusable options.
func (o Options) Validate() error {
	if o.ChunkSize < 1 {
		return codecerr.Configf("deflate: chunk size %d must be positive", o.ChunkSize)
	}
	return lz77.ValidateBounds(o.MaxOffset, o.MaxLength)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log
}
