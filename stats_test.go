package bzbcodec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/bzbcodec/huffman"
	"github.com/chronos-tachyon/bzbcodec/lz77"
)

func TestEncodedBits(t *testing.T) {
	type testRow struct {
		name     string
		artifact Artifact
		expect   int
	}

	testData := [...]testRow{
		{"huffman", &HuffmanArtifact{Bits: mustBits("000"), Table: huffman.Table{7: huffman.MakeCode(1, 0)}}, 3 + 17},
		{"lz77", &LZ77Artifact{Codewords: []lz77.Codeword{{Offset: 0, Length: 3, Literal: 7}, {Offset: 1, Length: 2, Literal: 7}}}, 2 * (16 + 16 + 8)},
		{"lzw", &LZWArtifact{Codes: []int{84, 79, 256, 258}}, 4 * 9},
		{"lzw-empty", &LZWArtifact{}, 0},
		{"nil", nil, 0},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			require.Equal(t, row.expect, EncodedBits(row.artifact))
		})
	}
}

func TestEncodedBits_Deflate(t *testing.T) {
	src := make([]int64, 20000)
	for i := range src {
		src[i] = int64(i % 10)
	}
	c, err := New("deflate")
	require.NoError(t, err)
	artifact, err := c.Encode(src)
	require.NoError(t, err)

	require.Equal(t, 8*len(src), RawBits(src))
	require.Less(t, EncodedBits(artifact), RawBits(src)/10)
}

func mustBits(str string) huffman.Bitstring {
	b, err := huffman.ParseBitstring(str)
	if err != nil {
		panic(err)
	}
	return b
}
