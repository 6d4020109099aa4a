// Package checksum hashes files before they are published.
package checksum

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// ComputeSHA256 computes the SHA256 hash of the file at the given path.
// Returns the lowercase hex-encoded hash string.
func ComputeSHA256(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() { _ = f.Close() }()

	return SHA256(f)
}

// SHA256 hashes everything read from r.
func SHA256(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to compute SHA256: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
