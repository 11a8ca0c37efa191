package deflate

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/chronos-tachyon/bzbcodec/huffman"
)

// Chunk is the encoded form of one fixed-size slice of input.  It is either
// a *Stored or a *Coded.
type Chunk interface {
	// Sum returns the checksum of the chunk's symbols, and false if the
	// chunk was encoded without one.
	Sum() (uint64, bool)

	isChunk()
}

// Checksum is an optional xxhash64 digest of a chunk's decoded symbols.
type Checksum struct {
	Value   uint64
	Present bool
}

// Sum implements Chunk.
func (c Checksum) Sum() (uint64, bool) {
	return c.Value, c.Present
}

// Stored is a chunk kept verbatim because coding it would not save enough.
type Stored struct {
	Checksum
	Symbols []int64
}

// Coded is a chunk compressed with LZ77, whose codeword fields were then
// Huffman coded in two streams: the lengths, and the interleaved
// (offset, literal) pairs.
type Coded struct {
	Checksum
	LengthsTable  huffman.Table
	LengthsBits   huffman.Bitstring
	LiteralsTable huffman.Table
	LiteralsBits  huffman.Bitstring
}

// Cost returns the size in bits used to decide between Coded and Stored:
// both bitstrings plus both tables.
func (c *Coded) Cost() int {
	return c.LengthsBits.Len() + c.LengthsTable.Cost() + c.LiteralsBits.Len() + c.LiteralsTable.Cost()
}

func (*Stored) isChunk() {}
func (*Coded) isChunk()  {}

var (
	_ Chunk = (*Stored)(nil)
	_ Chunk = (*Coded)(nil)
)

// checksum hashes symbols as little-endian 64-bit words.
func checksum(symbols []int64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, symbol := range symbols {
		binary.LittleEndian.PutUint64(buf[:], uint64(symbol))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
