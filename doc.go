// Package aes256 implements the AES-256 forward block cipher (FIPS-197).
//
// The package provides exactly two primitive operations: expanding a
// 256-bit key into the fifteen 128-bit round keys, and encrypting a single
// 128-bit block in place with that schedule. It carries no mode of
// operation, padding, decryption or authentication; callers build those on
// top of the block primitive.
//
// Basic usage:
//
//	var key aes256.Key   // 32 bytes of secret key material
//	var block aes256.Block // 16 bytes of plaintext
//
//	var schedule aes256.Schedule
//	aes256.ExpandKey(&key, &schedule)
//	aes256.EncryptBlock(&block, &schedule)
//	// block now holds the ciphertext.
//
// # Data Layout
//
// A [Block] is the AES state stored column-major: byte 0 is row 0 of
// column 0, byte 1 is row 1 of column 0, byte 4 is row 0 of column 1, and
// so on. This matches the byte order of the FIPS-197 test vectors, so
// blocks can be filled directly from hex-encoded vectors.
//
// # Concurrency
//
// Neither [ExpandKey] nor [EncryptBlock] holds any hidden state. A
// [Schedule] is read-only once expanded, so any number of goroutines may
// encrypt their own blocks against the same schedule concurrently, as long
// as nothing rewrites the schedule at the same time.
//
// # Tracing
//
// [Cipher] accepts an [Observer] through [WithObserver] that is called with
// a copy of the state after every elementary transformation. The bare
// [EncryptBlock] never calls an observer. The trace subpackage provides a
// recorder and a logging observer.
package aes256
