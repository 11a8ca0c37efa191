package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// maxBitsPerCode is the longest code a Code can hold.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from its string form, e.g. "0110".
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, codecerr.Decodef("code %q is longer than %d bits", str, maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, codecerr.Decodef("code %q: invalid character %q", str, str[i])
		}
	}
	return hc, nil
}

// Append returns the Code extended by one trailing bit.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "Code.Append on a code of %d bits", hc.Size)
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the Code, counting from the first.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "Code.Bit index %d out of range [0, %d)", i, hc.Size)
	return (hc.Bits>>(hc.Size-1-i))&1 == 1
}

// Parent returns the Code with its last bit removed.
func (hc Code) Parent() Code {
	assert.Assertf(hc.Size > 0, "Code.Parent on the empty code")
	return Code{Size: hc.Size - 1, Bits: hc.Bits >> 1}
}

// Sibling returns the Code with its last bit flipped.
func (hc Code) Sibling() Code {
	assert.Assertf(hc.Size > 0, "Code.Sibling on the empty code")
	return Code{Size: hc.Size, Bits: hc.Bits ^ 1}
}

// IsValid reports whether the Code has a size in [1, 64] and no bits set
// beyond its size.
func (hc Code) IsValid() bool {
	if hc.Size == 0 || hc.Size > maxBitsPerCode {
		return false
	}
	return hc.Size == maxBitsPerCode || hc.Bits>>hc.Size == 0
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

var _ fmt.Stringer = Code{}
