package aes256

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// fips197Key, fips197Plaintext and fips197Ciphertext are the AES-256
// example from FIPS-197 Appendix C.3.
const (
	fips197Key        = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	fips197Plaintext  = "00112233445566778899aabbccddeeff"
	fips197Ciphertext = "8ea2b7ca516745bfeafc49904b496089"
)

func mustDecodeHex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func keyFromHex(t testing.TB, s string) *Key {
	t.Helper()

	b := mustDecodeHex(t, s)
	require.Len(t, b, KeySize)
	return (*Key)(b)
}

func blockFromHex(t testing.TB, s string) *Block {
	t.Helper()

	b := mustDecodeHex(t, s)
	require.Len(t, b, BlockSize)
	return (*Block)(b)
}

func randomKey(t testing.TB) *Key {
	t.Helper()

	var k Key
	_, err := rand.Read(k[:])
	require.NoError(t, err)
	return &k
}

func randomBlock(t testing.TB) *Block {
	t.Helper()

	var b Block
	_, err := rand.Read(b[:])
	require.NoError(t, err)
	return &b
}
