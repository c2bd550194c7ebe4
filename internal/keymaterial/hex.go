package keymaterial

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vaultsandbox/aes256"
)

// ToHex encodes bytes as lowercase hex.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes hex, ignoring surrounding whitespace.
func FromHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// ParseKeyHex decodes a hex-encoded 256-bit key.
func ParseKeyHex(s string) (*aes256.Key, error) {
	data, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	return keyFromBytes(data)
}

// ParseBlockHex decodes a hex-encoded 128-bit block.
func ParseBlockHex(s string) (*aes256.Block, error) {
	data, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	return blockFromBytes(data)
}

func keyFromBytes(data []byte) (*aes256.Key, error) {
	if len(data) != aes256.KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(data), aes256.KeySize)
	}

	var key aes256.Key
	copy(key[:], data)
	return &key, nil
}

func blockFromBytes(data []byte) (*aes256.Block, error) {
	if len(data) != aes256.BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidBlockSize, len(data), aes256.BlockSize)
	}

	var block aes256.Block
	copy(block[:], data)
	return &block, nil
}
