package huffman

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// Bitstring is an append-only sequence of bits.  The zero value is an empty
// Bitstring ready to use.
//
// Copies of a Bitstring share storage until one of them appends.  The first
// copy to append extends the shared storage in place; any other copy that
// appends afterwards first moves its bits to storage of its own, so copies
// never observe each other's appends.  Appends to copies of one Bitstring
// must not run concurrently.
type Bitstring struct {
	store *bitStore
	n     uint
}

// bitStore is the storage shared by copies of a Bitstring.  n is the
// length of the longest Bitstring written through it; bits at or past n
// belong to nobody.
type bitStore struct {
	set *bitset.BitSet
	n   uint
}

// NewBitstring returns an empty Bitstring with room for capacity bits.
func NewBitstring(capacity int) Bitstring {
	if capacity < 0 {
		capacity = 0
	}
	return Bitstring{store: &bitStore{set: bitset.New(uint(capacity))}}
}

// ParseBitstring constructs a Bitstring from a string of '0' and '1'
// characters.
func ParseBitstring(str string) (Bitstring, error) {
	b := NewBitstring(len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			b.AppendBit(false)
		case '1':
			b.AppendBit(true)
		default:
			return Bitstring{}, codecerr.Decodef("bitstring: invalid character %q at %d", str[i], i)
		}
	}
	return b, nil
}

// Len returns the number of bits.
func (b Bitstring) Len() int {
	return int(b.n)
}

// Bit returns the i'th bit.
func (b Bitstring) Bit(i int) bool {
	assert.Assertf(i >= 0 && uint(i) < b.n, "Bitstring.Bit index %d out of range [0, %d)", i, b.n)
	return b.store.set.Test(uint(i))
}

// AppendBit appends one bit.
func (b *Bitstring) AppendBit(bit bool) {
	switch {
	case b.store == nil:
		b.store = &bitStore{set: bitset.New(0)}
	case b.store.n != b.n:
		*b = b.Clone()
	}
	b.store.set.SetTo(b.n, bit)
	b.n++
	b.store.n = b.n
}

// Clone returns a copy of b with storage of its own.
func (b Bitstring) Clone() Bitstring {
	set := bitset.New(b.n)
	for i := uint(0); i < b.n; i++ {
		if b.store.set.Test(i) {
			set.Set(i)
		}
	}
	return Bitstring{store: &bitStore{set: set, n: b.n}, n: b.n}
}

// AppendCode appends every bit of hc, first bit first.
func (b *Bitstring) AppendCode(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		b.AppendBit(hc.Bit(i))
	}
}

// Equal reports whether b and other hold the same bits.
func (b Bitstring) Equal(other Bitstring) bool {
	if b.n != other.n {
		return false
	}
	for i := uint(0); i < b.n; i++ {
		if b.store.set.Test(i) != other.store.set.Test(i) {
			return false
		}
	}
	return true
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bitstring) String() string {
	var sb strings.Builder
	sb.Grow(int(b.n))
	for i := uint(0); i < b.n; i++ {
		if b.store.set.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (b Bitstring) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bitstring) UnmarshalText(text []byte) error {
	parsed, err := ParseBitstring(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
