package huffman

// Encode builds a Huffman code for src and returns src encoded with it,
// along with the code table needed to decode it.  An empty src yields an
// empty Bitstring and an empty Table.
func Encode(src []int64) (Bitstring, Table, error) {
	var e Encoder
	if err := e.Init(src); err != nil {
		return Bitstring{}, nil, err
	}

	bits := NewBitstring(len(src) * int(e.MaxSize()))
	for _, symbol := range src {
		hc, _ := e.Encode(symbol)
		bits.AppendCode(hc)
	}
	return bits, e.Table(), nil
}

// Decode reverses Encode.
func Decode(bits Bitstring, table Table) ([]int64, error) {
	var d Decoder
	if err := d.Init(table); err != nil {
		return nil, err
	}
	return d.Decode(bits)
}
