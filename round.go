package aes256

import (
	"github.com/vaultsandbox/aes256/internal/gf"
	"github.com/vaultsandbox/aes256/internal/sbox"
)

// subBytes replaces every state byte with its S-box image.
func subBytes(state *Block) {
	for i := range state {
		state[i] = sbox.Forward(state[i])
	}
}

// shiftRows rotates row r of the column-major state left by r positions.
// Row r lives at indices r, r+4, r+8 and r+12.
func shiftRows(state *Block) {
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

// mixColumns multiplies every column by the fixed MDS matrix
//
//	2 3 1 1
//	1 2 3 1
//	1 1 2 3
//	3 1 1 2
//
// using doubling for the 2 terms and doubling plus the byte for the 3 terms.
func mixColumns(state *Block) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		b0, b1, b2, b3 := gf.Double(a0), gf.Double(a1), gf.Double(a2), gf.Double(a3)

		state[c] = b0 ^ b1 ^ a1 ^ a2 ^ a3
		state[c+1] = a0 ^ b1 ^ b2 ^ a2 ^ a3
		state[c+2] = a0 ^ a1 ^ b2 ^ b3 ^ a3
		state[c+3] = b0 ^ a0 ^ a1 ^ a2 ^ b3
	}
}

// addRoundKey XORs the round key into the state.
func addRoundKey(state *Block, roundKey *[BlockSize]byte) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}
