package sbox

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultsandbox/aes256/internal/gf"
)

func TestForwardInverse_Bijection(t *testing.T) {
	var seen [256]bool
	for v := 0; v < 256; v++ {
		b := byte(v)
		require.Equal(t, b, Inverse(Forward(b)), "Inverse(Forward(%#02x))", v)
		require.Equal(t, b, Forward(Inverse(b)), "Forward(Inverse(%#02x))", v)

		f := Forward(b)
		require.False(t, seen[f], "Forward(%#02x) = %#02x is not unique", v, f)
		seen[f] = true
	}
}

func TestForward_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		in, want byte
	}{
		{"00", 0x00, 0x63},
		{"01", 0x01, 0x7c},
		{"53", 0x53, 0xed},
		{"9a", 0x9a, 0xb8},
		{"ff", 0xff, 0x16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Forward(tt.in))
			require.Equal(t, tt.in, Inverse(tt.want))
		})
	}
}

// multiplicativeInverse returns a^254, which is a^-1 for a != 0 and 0 for 0.
func multiplicativeInverse(a byte) byte {
	r := byte(1)
	for i := 0; i < 254; i++ {
		r = gf.Mul(r, a)
	}
	return r
}

// affine is the FIPS-197 equation 5.1 affine transform over GF(2).
func affine(b byte) byte {
	return b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ 0x63
}

func TestForward_MatchesFieldConstruction(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := affine(multiplicativeInverse(byte(v)))
		require.Equal(t, want, Forward(byte(v)), "Forward(%#02x)", v)
	}
}

func TestInverse_MatchesFieldConstruction(t *testing.T) {
	for v := 0; v < 256; v++ {
		// The inverse affine map, then the field inverse.
		b := byte(v)
		s := bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 6) ^ 0x05
		require.Equal(t, multiplicativeInverse(s), Inverse(b), "Inverse(%#02x)", v)
	}
}
