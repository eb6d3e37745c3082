package interleave_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/interleave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMerge_Parity pins the wire contract: longitude on even positions,
// latitude on odd, longitude first.
func TestMerge_Parity(t *testing.T) {
	lng := []byte{1, 1, 1}
	lat := []byte{0, 0, 0}

	bits, err := interleave.Merge(lng, lat)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 1, 0, 1, 0}, bits)
}

// TestMerge_OddTotal gives longitude the final unpaired bit.
func TestMerge_OddTotal(t *testing.T) {
	lng := []byte{1, 0, 1}
	lat := []byte{0, 1}

	bits, err := interleave.Merge(lng, lat)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 1, 1}, bits)
}

// TestMerge_LengthMismatch rejects contract violations in both directions.
func TestMerge_LengthMismatch(t *testing.T) {
	_, err := interleave.Merge([]byte{1}, []byte{0, 0})
	assert.ErrorIs(t, err, interleave.ErrLengthMismatch, "latitude longer")

	_, err = interleave.Merge([]byte{1, 1, 1}, []byte{0})
	assert.ErrorIs(t, err, interleave.ErrLengthMismatch, "longitude two longer")
}

// TestSplit_Inverse checks Split(Merge(lng,lat)) == (lng,lat) across
// even and odd totals, including empty streams.
func TestSplit_Inverse(t *testing.T) {
	cases := []struct {
		name     string
		lng, lat []byte
	}{
		{"empty", []byte{}, []byte{}},
		{"single", []byte{1}, []byte{}},
		{"even", []byte{1, 0, 1, 1}, []byte{0, 1, 0, 0}},
		{"odd", []byte{1, 0, 1}, []byte{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bits, err := interleave.Merge(tc.lng, tc.lat)
			require.NoError(t, err)

			lng, lat := interleave.Split(bits)
			assert.Equal(t, tc.lng, lng)
			assert.Equal(t, tc.lat, lat)
		})
	}
}

// TestMerge_Inverse checks Merge(Split(bits)) == bits for an arbitrary
// stream of every length up to two full characters.
func TestMerge_Inverse(t *testing.T) {
	pattern := []byte{1, 0, 0, 1, 1, 0, 1, 0, 1, 1}
	for n := 0; n <= len(pattern); n++ {
		lng, lat := interleave.Split(pattern[:n])
		back, err := interleave.Merge(lng, lat)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, pattern[:n], back, "length %d", n)
	}
}
