package codecerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	type testRow struct {
		name string
		err  error
		kind error
		text string
	}

	testData := [...]testRow{
		{"config", Configf("max offset %d", 0), ErrConfiguration, "configuration error: max offset 0"},
		{"decode", Decodef("unknown code %d", 300), ErrDecode, "decode error: unknown code 300"},
		{"encode", Encodef("symbol %d", -1), ErrEncode, "encode error: symbol -1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			require.ErrorIs(t, row.err, row.kind)
			require.Equal(t, row.text, row.err.Error())
			for _, other := range []error{ErrConfiguration, ErrDecode, ErrEncode} {
				if other != row.kind {
					require.False(t, errors.Is(row.err, other))
				}
			}
		})
	}
}

func TestIsDecode_Wrapped(t *testing.T) {
	err := fmt.Errorf("chunk 3: %w", Decodef("bad offset"))
	require.True(t, IsDecode(err))
	require.False(t, IsDecode(Encodef("x")))
	require.False(t, IsDecode(nil))
}
