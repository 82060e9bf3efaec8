package dbtable

import (
	"encoding/hex"
	"fmt"
	"slices"
)

// hashKey is the daemon's bucket hash: boost hash_combine over the key bytes.
func hashKey(key []byte) uint64 {
	var seed uint64
	for _, b := range key {
		seed ^= uint64(b) + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}
	return seed
}

// ParseKey decodes a key printed in display order (reversed, like a
// transaction hash) into storage order.
func ParseKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse key %q: %w", s, err)
	}
	slices.Reverse(key)
	return key, nil
}

// FormatKey is the inverse of ParseKey.
func FormatKey(key []byte) string {
	out := slices.Clone(key)
	slices.Reverse(out)
	return hex.EncodeToString(out)
}
