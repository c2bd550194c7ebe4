package keymaterial

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/vaultsandbox/aes256"
)

// DeriveKey derives an AES-256 key from secret using HKDF-SHA-512.
// An empty salt is replaced by a zero salt of hash length.
func DeriveKey(secret, salt, info []byte) (*aes256.Key, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)

	var key aes256.Key
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return &key, nil
}
