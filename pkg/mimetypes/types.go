// Package mimetypes answers "which MIME types match this filename".
//
// A Registry combines three extension tables, checked in order:
//   - custom registrations added with Add (usually from the config file)
//   - the h2non/filetype extension table
//   - the system table exposed by the standard mime package
//
// Every candidate is returned as a Type; the first one is the preferred match.
// Content sniffing lives in Sniffer and is not part of TypeFor.
package mimetypes

import (
	"errors"
	"fmt"
	"mime"
	"strings"
)

// Candidate sources reported in Type.Source
const (
	SourceCustom   = "custom"
	SourceFiletype = "filetype"
	SourceSystem   = "system"
	SourceSniffed  = "sniffed"
)

// ErrInvalidContentType is matched by every error caused by a malformed
// media type in one of the lookup tables.
var ErrInvalidContentType = errors.New("invalid content type")

// InvalidContentTypeError reports a table entry that is not a valid media type.
type InvalidContentTypeError struct {
	Value     string
	Extension string
	Err       error
}

func (e *InvalidContentTypeError) Error() string {
	return fmt.Sprintf("invalid content type %q for extension %q: %v", e.Value, e.Extension, e.Err)
}

// Unwrap exposes both the sentinel and the parser error to errors.Is/As.
func (e *InvalidContentTypeError) Unwrap() []error {
	return []error{ErrInvalidContentType, e.Err}
}

// Type is a single candidate MIME type.
type Type struct {
	MediaType string // lower-case type/subtype, no parameters
	Extension string
	Source    string
}

func (t Type) String() string { return t.MediaType }

// Lookup resolves a filename to its candidate types, most preferred first.
type Lookup interface {
	TypeFor(filename string) ([]Type, error)
}

// Normalize lower-cases a content type and drops any parameters.
// The empty string stays empty.
func Normalize(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.Index(value, ";"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}

// parseType validates raw with mime.ParseMediaType and returns the bare media type.
func parseType(raw, ext, source string) (Type, error) {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err == nil && !strings.Contains(mediaType, "/") {
		err = errors.New("missing subtype")
	}
	if err != nil {
		return Type{}, &InvalidContentTypeError{Value: raw, Extension: ext, Err: err}
	}
	return Type{MediaType: mediaType, Extension: ext, Source: source}, nil
}
