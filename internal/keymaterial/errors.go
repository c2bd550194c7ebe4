package keymaterial

import "errors"

var (
	// ErrInvalidKeySize is returned when decoded key material is not
	// exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidBlockSize is returned when a decoded block is not exactly
	// 16 bytes.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidEncoding is returned when input is not valid hex or base64.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrEmptySecret is returned when key derivation is given no secret.
	ErrEmptySecret = errors.New("empty secret")
)
