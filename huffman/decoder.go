package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// Decoder implements a decoder for a Huffman code table.
type Decoder struct {
	table   map[Code]decoderData
	size    int
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from a code table as returned by Encode.
//
// Every code must be 1 to 64 bits long, and no code may be a prefix of
// another; Init rejects such tables with a decode error.  An empty table is
// permitted and decodes only the empty Bitstring.
//
func (d *Decoder) Init(codes Table) error {
	if len(codes) == 0 {
		*d = Decoder{}
		return nil
	}

	// Fill in sorted order so that error messages are reproducible.
	symbols := codes.Symbols()

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := len(symbols) * log2int(len(symbols))

	table := make(map[Code]decoderData, numTableSlots)
	var minSize, maxSize byte
	for i, symbol := range symbols {
		hc := codes[symbol]
		if !hc.IsValid() {
			return codecerr.Decodef("code table: symbol %d has invalid code (size %d, bits %#x)", symbol, hc.Size, hc.Bits)
		}
		if err := fillTable(table, symbol, hc); err != nil {
			return err
		}
		if i == 0 || minSize > hc.Size {
			minSize = hc.Size
		}
		if i == 0 || maxSize < hc.Size {
			maxSize = hc.Size
		}
	}

	*d = Decoder{
		table:   table,
		size:    len(symbols),
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Lookup reports what the Decoder knows about the (possibly partial) code
// hc.  If hc is a complete code, leaf is true and symbol is its symbol.  If
// hc is a proper prefix of one or more codes, leaf is false and minSize and
// maxSize bound the sizes of the codes it can complete to.  If hc is neither,
// found is false.
func (d Decoder) Lookup(hc Code) (symbol int64, leaf bool, minSize byte, maxSize byte, found bool) {
	dd, found := d.table[hc]
	if !found {
		return 0, false, 0, 0, false
	}
	return dd.symbol, dd.leaf, dd.minSize, dd.maxSize, true
}

// Decode decodes every symbol in bits.  It fails at the first bit that does
// not extend a valid prefix, or if bits ends partway through a code.
func (d Decoder) Decode(bits Bitstring) ([]int64, error) {
	n := bits.Len()
	if n != 0 && d.size == 0 {
		return nil, codecerr.Decodef("%d bits with an empty code table", n)
	}

	out := make([]int64, 0, n/int(maxByte(d.maxSize, 1)))
	var hc Code
	start := 0
	for i := 0; i < n; i++ {
		if hc.Size == d.maxSize {
			return nil, codecerr.Decodef("bit %d: no code of %d bits or less", start, d.maxSize)
		}
		hc = hc.Append(bits.Bit(i))
		dd, found := d.table[hc]
		if !found {
			return nil, codecerr.Decodef("bit %d: prefix %q matches no code", start, hc.String())
		}
		if dd.leaf {
			out = append(out, dd.symbol)
			hc = Code{}
			start = i + 1
		}
	}
	if hc.Size != 0 {
		return nil, codecerr.Decodef("bit %d: bitstring ends inside code %q", start, hc.String())
	}
	return out, nil
}

// MinSize is the bit length of the shortest code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		if dd.leaf {
			fmt.Fprintf(&buf, "\tDecode(%q) = %d\n", hc.String(), dd.symbol)
		} else {
			fmt.Fprintf(&buf, "\tDecode(%q) = {%d, %d}\n", hc.String(), dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  int64
	leaf    bool
	minSize byte
	maxSize byte
}

// fillTable records hc as a leaf for symbol, then walks up through every
// prefix of hc, widening the [minSize, maxSize] range stored for each.
func fillTable(table map[Code]decoderData, symbol int64, hc Code) error {
	if old, found := table[hc]; found {
		if old.leaf {
			return codecerr.Decodef("code table: symbols %d and %d share code %q", old.symbol, symbol, hc.String())
		}
		return codecerr.Decodef("code table: code %q of symbol %d is a prefix of another code", hc.String(), symbol)
	}

	dd := decoderData{symbol: symbol, leaf: true, minSize: hc.Size, maxSize: hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{minSize: dd.minSize, maxSize: dd.maxSize}
		if ddSibling, found := table[hc.Sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		hc = hc.Parent()

		ddOld, found := table[hc]
		if found && ddOld.leaf {
			return codecerr.Decodef("code table: code %q of symbol %d is a prefix of the code of symbol %d", hc.String(), ddOld.symbol, symbol)
		}

		// If table[hc] already equals ddNew, we can stop recursing.

		if found && ddOld == ddNew {
			break
		}

		table[hc] = ddNew
		dd = ddNew
	}
	return nil
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
