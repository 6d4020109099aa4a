package mimetypes

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Sniffer detects a content type from the leading bytes of a file.
type Sniffer struct{}

// NewSniffer returns a sniffer with the library's default read limit.
func NewSniffer() *Sniffer {
	return &Sniffer{}
}

// Sniff reads from r and returns the detected type. Unrecognised content is
// reported as application/octet-stream, never as an error.
func (s *Sniffer) Sniff(r io.Reader) (Type, error) {
	detected, err := mimetype.DetectReader(r)
	if err != nil {
		return Type{}, fmt.Errorf("failed to sniff content type: %w", err)
	}
	return parseType(detected.String(), strings.TrimPrefix(detected.Extension(), "."), SourceSniffed)
}
