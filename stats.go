package bzbcodec

import (
	"encoding/binary"
	mathbits "math/bits"

	"github.com/chronos-tachyon/bzbcodec/deflate"
)

// EncodedBits estimates the size in bits of a serialized artifact.  Symbols
// are counted as zig-zag varints, LZ77 offsets and lengths as 16-bit fields,
// and LZW codes at the fixed width of the largest code.  Huffman tables are
// counted as by huffman.Table.Cost.
func EncodedBits(a Artifact) int {
	switch art := a.(type) {
	case *HuffmanArtifact:
		return art.Bits.Len() + art.Table.Cost()

	case *LZ77Artifact:
		total := 0
		for _, cw := range art.Codewords {
			total += 16 + 16 + varintBits(cw.Literal)
		}
		return total

	case *LZWArtifact:
		maxCode := 0
		for _, code := range art.Codes {
			if code > maxCode {
				maxCode = code
			}
		}
		width := mathbits.Len(uint(maxCode))
		if width == 0 {
			width = 1
		}
		return width * len(art.Codes)

	case *DeflateArtifact:
		total := 0
		for _, chunk := range art.Chunks {
			switch c := chunk.(type) {
			case *deflate.Stored:
				for _, symbol := range c.Symbols {
					total += varintBits(symbol)
				}
			case *deflate.Coded:
				total += c.Cost()
			}
		}
		return total

	default:
		return 0
	}
}

// RawBits is the size in bits of src stored as zig-zag varints, the
// baseline EncodedBits is compared against.
func RawBits(src []int64) int {
	total := 0
	for _, symbol := range src {
		total += varintBits(symbol)
	}
	return total
}

func varintBits(symbol int64) int {
	var scratch [binary.MaxVarintLen64]byte
	return 8 * binary.PutVarint(scratch[:], symbol)
}
