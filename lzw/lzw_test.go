package lzw

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

func TestCompress_Known(t *testing.T) {
	src := asciiSymbols("TOBEORNOTTOBEORTOBEORNOT")
	codes, err := Compress(src)
	require.NoError(t, err)
	require.Equal(t, []int{
		'T', 'O', 'B', 'E', 'O', 'R', 'N', 'O', 'T',
		256, 258, 260, 265, 259, 261, 263,
	}, codes)

	back, err := Decompress(codes)
	require.NoError(t, err)
	require.Len(t, back, 24)
	require.Equal(t, src, back)
}

func TestCompress_CodeDefinedOnUse(t *testing.T) {
	// The second code is used on the same step that defines it.
	codes, err := Compress([]int64{1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []int{1, 256, 1}, codes)

	back, err := Decompress(codes)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1, 1, 1}, back)
}

func TestCompress_Empty(t *testing.T) {
	codes, err := Compress(nil)
	require.NoError(t, err)
	require.Empty(t, codes)

	back, err := Decompress(codes)
	require.NoError(t, err)
	require.NotNil(t, back)
	require.Empty(t, back)
}

func TestCompress_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	type testRow struct {
		name     string
		alphabet int
		input    []int64
	}

	bytesLike := make([]int64, 20000)
	for i := range bytesLike {
		bytesLike[i] = int64(rng.Intn(256))
	}
	lowEntropy := make([]int64, 20000)
	for i := range lowEntropy {
		lowEntropy[i] = int64(rng.Intn(3))
	}
	samples := make([]int64, 5000)
	for i := range samples {
		samples[i] = int64(30000 + rng.Intn(64))
	}
	runs := make([]int64, 10000)
	for i := range runs {
		runs[i] = int64(i / 500)
	}

	testData := [...]testRow{
		{"single", 256, []int64{42}},
		{"bytes", 256, bytesLike},
		{"low-entropy", 256, lowEntropy},
		{"runs", 256, runs},
		{"wide-alphabet", 1 << 16, samples},
		{"binary-alphabet", 2, []int64{0, 1, 1, 0, 1, 1, 1, 0, 0, 0, 1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes, err := CompressAlphabet(row.input, row.alphabet)
			require.NoError(t, err)
			require.LessOrEqual(t, len(codes), len(row.input))

			back, err := DecompressAlphabet(codes, row.alphabet)
			require.NoError(t, err)
			require.Equal(t, row.input, back)
		})
	}
}

func TestCompress_CodesNeverSkipAhead(t *testing.T) {
	src := asciiSymbols("abababababababababab the quick brown fox abababab")
	codes, err := Compress(src)
	require.NoError(t, err)
	next := DefaultAlphabet
	for i, code := range codes {
		require.LessOrEqual(t, code, next, "code %d at %d", code, i)
		if i > 0 {
			next++
		}
	}
}

func TestCompress_SymbolOutsideAlphabet(t *testing.T) {
	for _, symbol := range []int64{-1, 256, 1 << 40} {
		_, err := Compress([]int64{1, 2, symbol})
		require.ErrorIs(t, err, codecerr.ErrEncode)
	}
}

func TestCompress_InvalidAlphabet(t *testing.T) {
	_, err := CompressAlphabet([]int64{0}, 0)
	require.ErrorIs(t, err, codecerr.ErrConfiguration)
	_, err = DecompressAlphabet([]int{0}, -5)
	require.ErrorIs(t, err, codecerr.ErrConfiguration)
}

func TestDecompress_Errors(t *testing.T) {
	type testRow struct {
		name  string
		codes []int
		text  string
	}

	testData := [...]testRow{
		{"gap", []int{65, 300}, "lzw: code 300 at 1 is neither known nor the next code 256"},
		{"gap-later", []int{65, 66, 256, 259}, "code 259 at 3 is neither known nor the next code 258"},
		{"first-too-big", []int{256}, "first code 256 outside alphabet"},
		{"negative", []int{65, -2}, "code -2 at 1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decompress(row.codes)
			require.Nil(t, out)
			require.ErrorIs(t, err, codecerr.ErrDecode)
			require.Contains(t, err.Error(), row.text)
		})
	}
}

func asciiSymbols(str string) []int64 {
	out := make([]int64, len(str))
	for i := 0; i < len(str); i++ {
		out[i] = int64(str[i])
	}
	return out
}
