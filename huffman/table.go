package huffman

import (
	"encoding/binary"
	"encoding/json"
	"sort"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// Table maps each symbol to its Code.  It is produced by Encode and consumed
// by Decode.
type Table map[int64]Code

// Symbols returns the symbols of the table in ascending order.
func (t Table) Symbols() []int64 {
	out := make([]int64, 0, len(t))
	for symbol := range t {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Cost estimates the size in bits of transmitting the table: each entry
// costs its symbol as a zig-zag varint, one byte for the code size, and the
// code bits themselves.
func (t Table) Cost() int {
	var scratch [binary.MaxVarintLen64]byte
	total := 0
	for symbol, hc := range t {
		n := binary.PutVarint(scratch[:], symbol)
		total += 8*n + 8 + int(hc.Size)
	}
	return total
}

// MarshalJSON encodes the table as an object of symbol to bit string, e.g.
// {"7":"0"}.
func (t Table) MarshalJSON() ([]byte, error) {
	raw := make(map[int64]string, len(t))
	for symbol, hc := range t {
		raw[symbol] = hc.String()
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw map[int64]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return codecerr.Decodef("code table: %v", err)
	}
	out := make(Table, len(raw))
	for symbol, str := range raw {
		hc, err := ParseCode(str)
		if err != nil {
			return err
		}
		out[symbol] = hc
	}
	*t = out
	return nil
}

var (
	_ json.Marshaler   = Table(nil)
	_ json.Unmarshaler = (*Table)(nil)
)
