// Package lz77 implements a sliding-window dictionary coder over integer
// symbols.
//
// Compress turns a sequence into Codewords, each either a run of one literal
// symbol or a copy of earlier output.  The window holds the last maxOffset
// symbols; among equally long matches the nearest one wins.
package lz77

import (
	"fmt"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

const (
	// MaxOffsetLimit and MaxLengthLimit bound the configurable window and
	// match length, so that both fields fit in 16 bits.
	MaxOffsetLimit = 1<<16 - 1
	MaxLengthLimit = 1<<16 - 1

	// DefaultMaxOffset and DefaultMaxLength keep both fields within a
	// byte.
	DefaultMaxOffset = 255
	DefaultMaxLength = 254
)

// Codeword is the basic unit of LZ77 output.
//
// If Offset is 0, the codeword stands for Length copies of Literal.
// Otherwise it stands for Length symbols copied from Offset symbols back in
// the output, and Literal holds the first of them.
type Codeword struct {
	Offset  int
	Length  int
	Literal int64
}

// String returns the (offset, length, literal) form of the codeword.
func (cw Codeword) String() string {
	return fmt.Sprintf("(%d, %d, %d)", cw.Offset, cw.Length, cw.Literal)
}

var _ fmt.Stringer = Codeword{}

// ValidateBounds checks maxOffset and maxLength against the limits above.
func ValidateBounds(maxOffset, maxLength int) error {
	if maxOffset < 1 || maxOffset > MaxOffsetLimit {
		return codecerr.Configf("lz77: max offset %d outside [1, %d]", maxOffset, MaxOffsetLimit)
	}
	if maxLength < 1 || maxLength > MaxLengthLimit {
		return codecerr.Configf("lz77: max length %d outside [1, %d]", maxLength, MaxLengthLimit)
	}
	return nil
}

// Compress encodes src as a list of codewords whose offsets never exceed
// maxOffset and whose lengths never exceed maxLength.
func Compress(src []int64, maxOffset, maxLength int) ([]Codeword, error) {
	if err := ValidateBounds(maxOffset, maxLength); err != nil {
		return nil, err
	}

	out := make([]Codeword, 0, len(src)/4+1)
	for pos := 0; pos < len(src); {
		m := findLongestMatch(src, pos, maxOffset, maxLength)
		var cw Codeword
		if m.len == 0 {
			cw = Codeword{Offset: 0, Length: literalRun(src, pos, maxLength), Literal: src[pos]}
		} else {
			cw = Codeword{Offset: m.off, Length: m.len, Literal: src[pos]}
		}
		out = append(out, cw)
		pos += cw.Length
	}
	return out, nil
}

// Size returns the number of symbols that codewords decompress to.
func Size(codewords []Codeword) int {
	total := 0
	for _, cw := range codewords {
		total += cw.Length
	}
	return total
}

// Decompress reverses Compress.  It fails on the first codeword that is
// malformed or that refers to output not yet produced.
func Decompress(codewords []Codeword) ([]int64, error) {
	size := 0
	for i, cw := range codewords {
		if cw.Offset < 0 || cw.Offset > MaxOffsetLimit {
			return nil, codecerr.Decodef("lz77: codeword %d %v: offset outside [0, %d]", i, cw, MaxOffsetLimit)
		}
		if cw.Length < 1 || cw.Length > MaxLengthLimit {
			return nil, codecerr.Decodef("lz77: codeword %d %v: length outside [1, %d]", i, cw, MaxLengthLimit)
		}
		if cw.Offset > size {
			return nil, codecerr.Decodef("lz77: codeword %d %v: offset reaches before start of output (%d symbols written)", i, cw, size)
		}
		size += cw.Length
	}

	out := make([]int64, size)
	pos := 0
	for _, cw := range codewords {
		if cw.Offset == 0 {
			for j := 0; j < cw.Length; j++ {
				out[pos+j] = cw.Literal
			}
			pos += cw.Length
			continue
		}

		// The source may overlap the bytes being written when
		// Length > Offset, so copy in Offset-sized strides.
		from := pos - cw.Offset
		remain := cw.Length
		for remain > 0 {
			n := copy(out[pos:pos+minInt(remain, cw.Offset)], out[from:pos])
			pos += n
			remain -= n
		}
	}
	return out, nil
}
