// Package keymaterial turns encoded key and block material into the
// fixed-size arrays used by the aes256 package.
//
// # Encodings
//
// Test vectors and harness input arrive as text:
//
//   - [ParseKeyHex]/[ParseBlockHex]: lowercase or uppercase hex, the format
//     used by FIPS-197 and NIST known-answer files.
//
//   - [ParseKeyBase64]/[ParseBlockBase64]: lenient base64. URL-safe and
//     standard alphabets are accepted, with or without padding.
//
// Every parser checks the decoded length and reports a mismatch with
// [ErrInvalidKeySize] or [ErrInvalidBlockSize], wrapped with the actual and
// expected sizes.
//
// # Key Derivation
//
// [DeriveKey] stretches arbitrary secret material into an AES-256 key with
// HKDF-SHA-512 (RFC 5869). It exists for harnesses that exchange a shared
// secret rather than a raw key; the cipher itself never derives keys.
package keymaterial
