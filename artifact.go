package bzbcodec

import (
	"github.com/chronos-tachyon/bzbcodec/deflate"
	"github.com/chronos-tachyon/bzbcodec/huffman"
	"github.com/chronos-tachyon/bzbcodec/lz77"
)

// Artifact is the encoded form of a sequence.  Its concrete type depends on
// the Algorithm that produced it.
type Artifact interface {
	Algorithm() Algorithm

	// Len returns the number of symbols the artifact decodes to, or -1
	// if that is not known without decoding.
	Len() int
}

// HuffmanArtifact is the output of the huffman codec.  The table is needed
// to decode the bits.
type HuffmanArtifact struct {
	Bits  huffman.Bitstring
	Table huffman.Table
}

func (*HuffmanArtifact) Algorithm() Algorithm { return Huffman }
func (*HuffmanArtifact) Len() int             { return -1 }

// LZ77Artifact is the output of the lz77 codec.
type LZ77Artifact struct {
	Codewords []lz77.Codeword
}

func (*LZ77Artifact) Algorithm() Algorithm { return LZ77 }

func (a *LZ77Artifact) Len() int {
	return lz77.Size(a.Codewords)
}

// LZWArtifact is the output of the lzw codec.  AlphabetSize records the
// seed dictionary the codes were built on.
type LZWArtifact struct {
	Codes        []int
	AlphabetSize int
}

func (*LZWArtifact) Algorithm() Algorithm { return LZW }
func (*LZWArtifact) Len() int             { return -1 }

// DeflateArtifact is the output of the deflate codec: one chunk per
// ChunkSize symbols of input.
type DeflateArtifact struct {
	Chunks []deflate.Chunk
}

func (*DeflateArtifact) Algorithm() Algorithm { return Deflate }
func (*DeflateArtifact) Len() int             { return -1 }

var (
	_ Artifact = (*HuffmanArtifact)(nil)
	_ Artifact = (*LZ77Artifact)(nil)
	_ Artifact = (*LZWArtifact)(nil)
	_ Artifact = (*DeflateArtifact)(nil)
)
