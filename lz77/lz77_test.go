package lz77

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

func TestCompress_LiteralsOnly(t *testing.T) {
	src := []int64{1, 2, 3, 4, 5}
	out, err := Compress(src, DefaultMaxOffset, DefaultMaxLength)
	require.NoError(t, err)
	require.Len(t, out, len(src))
	for i, cw := range out {
		require.Equal(t, Codeword{Offset: 0, Length: 1, Literal: src[i]}, cw)
	}
}

func TestCompress_MaximalRun(t *testing.T) {
	src := make([]int64, 1000)
	for i := range src {
		src[i] = 9
	}
	out, err := Compress(src, DefaultMaxOffset, 254)
	require.NoError(t, err)
	require.Len(t, out, (1000+253)/254)
	require.Equal(t, []Codeword{
		{0, 254, 9},
		{1, 254, 9},
		{1, 254, 9},
		{1, 238, 9},
	}, out)

	back, err := Decompress(out)
	require.NoError(t, err)
	require.Equal(t, src, back)
}

func TestCompress_NearestOffsetWins(t *testing.T) {
	// The final "ab" matches at offsets 3 and 5 with the same length, so
	// the nearer one is chosen.
	src := []int64{'a', 'b', 'a', 'b', 'c', 'a', 'b'}
	out, err := Compress(src, DefaultMaxOffset, DefaultMaxLength)
	require.NoError(t, err)
	require.Equal(t, []Codeword{
		{0, 1, 'a'},
		{0, 1, 'b'},
		{2, 2, 'a'},
		{0, 1, 'c'},
		{3, 2, 'a'},
	}, out)
}

func TestCompress_WindowBound(t *testing.T) {
	// The repeat of 1 is 4 symbols back, outside a window of 3.
	src := []int64{1, 2, 3, 4, 1}
	out, err := Compress(src, 3, DefaultMaxLength)
	require.NoError(t, err)
	require.Len(t, out, 5)
	require.Equal(t, Codeword{0, 1, 1}, out[4])

	out, err = Compress(src, 4, DefaultMaxLength)
	require.NoError(t, err)
	require.Equal(t, Codeword{4, 1, 1}, out[4])
}

func TestCompress_Empty(t *testing.T) {
	out, err := Compress(nil, DefaultMaxOffset, DefaultMaxLength)
	require.NoError(t, err)
	require.Empty(t, out)

	back, err := Decompress(out)
	require.NoError(t, err)
	require.Empty(t, back)
}

func TestCompress_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	type testRow struct {
		name      string
		maxOffset int
		maxLength int
		input     []int64
	}

	noisy := make([]int64, 4000)
	for i := range noisy {
		noisy[i] = int64(rng.Intn(6)) - 3
	}
	random := make([]int64, 2000)
	for i := range random {
		random[i] = rng.Int63()
	}
	periodic := make([]int64, 3000)
	for i := range periodic {
		periodic[i] = int64(i % 17)
	}

	testData := [...]testRow{
		{"text", 255, 254, asciiSymbols("TOBEORNOTTOBEORTOBEORNOT")},
		{"noisy", 255, 254, noisy},
		{"noisy-small-window", 8, 3, noisy},
		{"random", 511, 510, random},
		{"periodic", 16, 65535, periodic},
		{"periodic-wide", 128, 65535, periodic},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Compress(row.input, row.maxOffset, row.maxLength)
			require.NoError(t, err)
			for _, cw := range out {
				require.LessOrEqual(t, cw.Offset, row.maxOffset)
				require.LessOrEqual(t, cw.Length, row.maxLength)
				require.GreaterOrEqual(t, cw.Length, 1)
			}
			require.Equal(t, len(row.input), Size(out))

			back, err := Decompress(out)
			require.NoError(t, err)
			require.Equal(t, row.input, back)
		})
	}
}

func TestCompress_InvalidBounds(t *testing.T) {
	type testRow struct {
		name      string
		maxOffset int
		maxLength int
	}

	testData := [...]testRow{
		{"zero-offset", 0, 10},
		{"negative-offset", -1, 10},
		{"zero-length", 10, 0},
		{"huge-offset", MaxOffsetLimit + 1, 10},
		{"huge-length", 10, MaxLengthLimit + 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Compress([]int64{1}, row.maxOffset, row.maxLength)
			require.ErrorIs(t, err, codecerr.ErrConfiguration)
		})
	}
}

func TestDecompress_Errors(t *testing.T) {
	type testRow struct {
		name  string
		input []Codeword
		text  string
	}

	testData := [...]testRow{
		{"offset-before-start", []Codeword{{0, 2, 5}, {3, 1, 5}}, "codeword 1 (3, 1, 5): offset reaches before start of output (2 symbols written)"},
		{"first-backref", []Codeword{{1, 1, 0}}, "offset reaches before start"},
		{"zero-length", []Codeword{{0, 0, 5}}, "length outside"},
		{"negative-offset", []Codeword{{-1, 1, 5}}, "offset outside"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decompress(row.input)
			require.Nil(t, out)
			require.ErrorIs(t, err, codecerr.ErrDecode)
			require.Contains(t, err.Error(), row.text)
		})
	}
}

func TestDecompress_Overlap(t *testing.T) {
	out, err := Decompress([]Codeword{{0, 1, 1}, {0, 1, 2}, {2, 7, 1}})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 1, 2, 1, 2, 1, 2, 1}, out)
}

func TestCodeword_String(t *testing.T) {
	require.Equal(t, "(3, 4, -1)", Codeword{3, 4, -1}.String())
}

func asciiSymbols(str string) []int64 {
	out := make([]int64, len(str))
	for i := 0; i < len(str); i++ {
		out[i] = int64(str[i])
	}
	return out
}
