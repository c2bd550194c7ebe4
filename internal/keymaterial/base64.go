package keymaterial

import (
	"encoding/base64"
	"fmt"

	"github.com/vaultsandbox/aes256"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64 decodes base64url or standard base64, with or without
// padding.
func DecodeBase64(s string) ([]byte, error) {
	// Try without padding first
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.URLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.RawStdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// ParseKeyBase64 decodes a base64-encoded 256-bit key.
func ParseKeyBase64(s string) (*aes256.Key, error) {
	data, err := DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return keyFromBytes(data)
}

// ParseBlockBase64 decodes a base64-encoded 128-bit block.
func ParseBlockBase64(s string) (*aes256.Block, error) {
	data, err := DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return blockFromBytes(data)
}
