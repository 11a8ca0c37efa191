// Package lzw implements adaptive dictionary compression over integer
// symbols.
//
// The dictionary starts with one code per symbol of the seed alphabet and
// gains one code per emitted code.  The decoder rebuilds the same dictionary
// from the code stream alone, so nothing but the codes needs to be kept.
package lzw

import (
	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// DefaultAlphabet is the size of the seed dictionary: one code for each
// byte value.
const DefaultAlphabet = 256

// Compress encodes src with the default seed alphabet.
func Compress(src []int64) ([]int, error) {
	return CompressAlphabet(src, DefaultAlphabet)
}

// Decompress reverses Compress.
func Decompress(codes []int) ([]int64, error) {
	return DecompressAlphabet(codes, DefaultAlphabet)
}

// CompressAlphabet encodes src with a seed dictionary holding the symbols
// [0, alphabet).  A symbol outside that range cannot be represented and
// fails with an encode error.
func CompressAlphabet(src []int64, alphabet int) ([]int, error) {
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}

	dict := newTrie(alphabet)
	out := make([]int, 0, len(src)/2+1)
	word := noCode
	for i, symbol := range src {
		if symbol < 0 || symbol >= int64(alphabet) {
			return nil, codecerr.Encodef("lzw: symbol %d at %d outside alphabet [0, %d)", symbol, i, alphabet)
		}
		if word == noCode {
			word = int(symbol)
			continue
		}
		if next, found := dict.lookup(word, symbol); found {
			word = next
			continue
		}
		out = append(out, word)
		dict.insert(word, symbol)
		word = int(symbol)
	}
	if word != noCode {
		out = append(out, word)
	}
	return out, nil
}

// DecompressAlphabet reverses CompressAlphabet.  It fails on the first code
// that is neither in the dictionary nor the code about to be assigned.
func DecompressAlphabet(codes []int, alphabet int) ([]int64, error) {
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return []int64{}, nil
	}

	first := codes[0]
	if first < 0 || first >= alphabet {
		return nil, codecerr.Decodef("lzw: first code %d outside alphabet [0, %d)", first, alphabet)
	}

	tbl := newTable(alphabet, len(codes))
	out := make([]int64, 0, 2*len(codes))
	out = append(out, int64(first))
	prev := first
	for i, code := range codes[1:] {
		next := tbl.size()
		var head int64
		switch {
		case code >= 0 && code < next:
			start := len(out)
			out = tbl.appendWord(out, code)
			head = out[start]
		case code == next:
			// The encoder defined this code on the very step that
			// emitted it: its word is prev plus prev's first symbol.
			start := len(out)
			out = tbl.appendWord(out, prev)
			head = out[start]
			out = append(out, head)
		default:
			return nil, codecerr.Decodef("lzw: code %d at %d is neither known nor the next code %d", code, i+1, next)
		}
		tbl.add(prev, head)
		prev = code
	}
	return out, nil
}

func validateAlphabet(alphabet int) error {
	if alphabet < 1 {
		return codecerr.Configf("lzw: alphabet size %d must be positive", alphabet)
	}
	return nil
}
