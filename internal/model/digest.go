package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Digest computes a deterministic identifier for a declaration: the first 8
// bytes of the SHA256 of its JSON encoding. Generated files carry it in their
// header so a stale expansion can be told apart from a current one.
func Digest(f *File) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8]), nil
}
