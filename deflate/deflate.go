// Package deflate implements a composite coder: input is split into chunks,
// each chunk is LZ77 compressed, and the codeword fields are Huffman coded.
// A chunk that does not shrink enough is stored verbatim instead.
package deflate

import (
	"fmt"
	"log/slog"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
	"github.com/chronos-tachyon/bzbcodec/huffman"
	"github.com/chronos-tachyon/bzbcodec/lz77"
)

// Package logger for all encoders
var log = slog.Default()

// SetLogger configures the package logger
func SetLogger(l *slog.Logger) {
	log = l
}

// Encode splits src into chunks of opts.ChunkSize symbols and encodes each.
func Encode(src []int64, opts Options) ([]Chunk, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := make([]Chunk, 0, (len(src)+opts.ChunkSize-1)/opts.ChunkSize)
	for start := 0; start < len(src); start += opts.ChunkSize {
		end := start + opts.ChunkSize
		if end > len(src) {
			end = len(src)
		}
		chunk, err := encodeChunk(src[start:end], opts)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(out), err)
		}
		out = append(out, chunk)
	}
	return out, nil
}

func encodeChunk(symbols []int64, opts Options) (Chunk, error) {
	var sum Checksum
	if opts.Checksums {
		sum = Checksum{Value: checksum(symbols), Present: true}
	}

	codewords, err := lz77.Compress(symbols, opts.MaxOffset, opts.MaxLength)
	if err != nil {
		return nil, err
	}

	lengths, literals := splitCodewords(codewords)

	coded := &Coded{Checksum: sum}
	coded.LengthsBits, coded.LengthsTable, err = huffman.Encode(lengths)
	if err != nil {
		return nil, err
	}
	coded.LiteralsBits, coded.LiteralsTable, err = huffman.Encode(literals)
	if err != nil {
		return nil, err
	}

	cost, budget := coded.Cost(), storedBitsPerSymbol*len(symbols)
	if cost >= budget {
		opts.logger().Debug("storing chunk",
			"symbols", len(symbols), "codewords", len(codewords), "codedBits", cost, "budget", budget)
		stored := &Stored{Checksum: sum, Symbols: make([]int64, len(symbols))}
		copy(stored.Symbols, symbols)
		return stored, nil
	}

	opts.logger().Debug("coding chunk",
		"symbols", len(symbols), "codewords", len(codewords), "codedBits", cost, "budget", budget)
	return coded, nil
}

// Decode reverses Encode, concatenating the decoded chunks in order.
func Decode(chunks []Chunk) ([]int64, error) {
	out := make([]int64, 0)
	for i, chunk := range chunks {
		symbols, err := decodeChunk(chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		if want, ok := chunk.Sum(); ok {
			if got := checksum(symbols); got != want {
				return nil, codecerr.Decodef("chunk %d: checksum mismatch: expected %#016x, got %#016x", i, want, got)
			}
		}
		out = append(out, symbols...)
	}
	return out, nil
}

func decodeChunk(chunk Chunk) ([]int64, error) {
	switch c := chunk.(type) {
	case *Stored:
		if c == nil {
			return nil, codecerr.Decodef("nil stored chunk")
		}
		return c.Symbols, nil

	case *Coded:
		if c == nil {
			return nil, codecerr.Decodef("nil coded chunk")
		}
		lengths, err := huffman.Decode(c.LengthsBits, c.LengthsTable)
		if err != nil {
			return nil, fmt.Errorf("lengths: %w", err)
		}
		literals, err := huffman.Decode(c.LiteralsBits, c.LiteralsTable)
		if err != nil {
			return nil, fmt.Errorf("literals: %w", err)
		}
		codewords, err := joinCodewords(lengths, literals)
		if err != nil {
			return nil, err
		}
		return lz77.Decompress(codewords)

	default:
		return nil, codecerr.Decodef("unknown chunk type %T", chunk)
	}
}

// splitCodewords separates the length field of each codeword from its
// offset and literal, which are interleaved as pairs.
func splitCodewords(codewords []lz77.Codeword) (lengths []int64, literals []int64) {
	lengths = make([]int64, len(codewords))
	literals = make([]int64, 2*len(codewords))
	for i, cw := range codewords {
		lengths[i] = int64(cw.Length)
		literals[2*i] = int64(cw.Offset)
		literals[2*i+1] = cw.Literal
	}
	return lengths, literals
}

func joinCodewords(lengths []int64, literals []int64) ([]lz77.Codeword, error) {
	if len(literals) != 2*len(lengths) {
		return nil, codecerr.Decodef("%d lengths but %d offset/literal values", len(lengths), len(literals))
	}
	codewords := make([]lz77.Codeword, len(lengths))
	for i := range codewords {
		length, offset := lengths[i], literals[2*i]
		if length < 1 || length > lz77.MaxLengthLimit {
			return nil, codecerr.Decodef("codeword %d: length %d outside [1, %d]", i, length, lz77.MaxLengthLimit)
		}
		if offset < 0 || offset > lz77.MaxOffsetLimit {
			return nil, codecerr.Decodef("codeword %d: offset %d outside [0, %d]", i, offset, lz77.MaxOffsetLimit)
		}
		codewords[i] = lz77.Codeword{Offset: int(offset), Length: int(length), Literal: literals[2*i+1]}
	}
	return codewords, nil
}
