// Package gf implements the GF(2^8) arithmetic used by AES: byte
// multiplication modulo x^8 + x^4 + x^3 + x + 1 and the key-schedule round
// constants.
package gf

// Reduction is the low byte of the AES reduction polynomial
// x^8 + x^4 + x^3 + x + 1. The x^8 term falls off the byte on shift.
const Reduction = 0x1b

// Mul multiplies a and b in GF(2^8).
func Mul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= Reduction
		}
		b >>= 1
	}
	return p
}

// Double returns a*2 in GF(2^8) (the FIPS-197 xtime operation).
// It is equal to Mul(a, 2) for every a.
func Double(a byte) byte {
	return a<<1 ^ (a>>7)*Reduction
}

// Rcon returns the key-schedule round constant for iteration i, which is
// 2^(i-1) in GF(2^8). Rcon(0) is 0, as are negative indices.
func Rcon(i int) byte {
	if i <= 0 {
		return 0
	}
	c := byte(1)
	for ; i > 1; i-- {
		c = Mul(c, 2)
	}
	return c
}
