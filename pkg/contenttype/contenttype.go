// Package contenttype assigns MIME content types to uploaded files.
//
// A file keeps its declared content type unless the caller forces an
// override, the type is missing, or it is one of the generic placeholder
// types. In those cases the type is looked up from the original filename and
// the first candidate wins:
//
//	r := contenttype.NewResolver(mimetypes.NewRegistry())
//	ct, err := r.Resolve("photo.jpg", "application/octet-stream", false) // "image/jpeg"
package contenttype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mimeset/mimeset/pkg/mimetypes"
	"github.com/mimeset/mimeset/pkg/upload"
)

// GenericTypes are placeholder types treated the same as a missing type.
var GenericTypes = []string{
	"application/octet-stream",
	"binary/octet-stream",
}

// IsGeneric reports whether ct is one of GenericTypes. The comparison is exact.
func IsGeneric(ct string) bool {
	for _, g := range GenericTypes {
		if ct == g {
			return true
		}
	}
	return false
}

// NeedsResolution reports whether a file with the current type must be looked up.
// A whitespace-only type counts as missing.
func NeedsResolution(current string, override bool) bool {
	return override || strings.TrimSpace(current) == "" || IsGeneric(current)
}

// ProcessingError is returned when the lookup tables hold an invalid content type.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to process file with MIME types, maybe not valid content-type? original error: %v", e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// Option configures a Resolver.
type Option func(*Resolver)

// WithSniffer enables content sniffing in Set when the filename lookup finds nothing.
func WithSniffer(s *mimetypes.Sniffer) Option {
	return func(r *Resolver) { r.sniffer = s }
}

// Resolver decides and assigns content types.
type Resolver struct {
	lookup  mimetypes.Lookup
	sniffer *mimetypes.Sniffer
}

// NewResolver returns a resolver backed by lookup.
func NewResolver(lookup mimetypes.Lookup, opts ...Option) *Resolver {
	r := &Resolver{lookup: lookup}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the content type a file named filename should carry.
// current is returned unchanged when no resolution is needed. When the
// lookup has no candidate the result is the empty string.
func (r *Resolver) Resolve(filename, current string, override bool) (string, error) {
	if !NeedsResolution(current, override) {
		return current, nil
	}
	t, found, err := r.first(filename)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return t.String(), nil
}

// Set resolves the content type of f and writes it back. changed is true when
// resolution ran, even if the value written equals the old one. On error f is
// left untouched.
func (r *Resolver) Set(f upload.File, override bool) (changed bool, err error) {
	if !NeedsResolution(f.ContentType(), override) {
		return false, nil
	}

	t, found, err := r.first(f.OriginalFilename())
	if err != nil {
		return false, err
	}

	resolved := t.String()
	if !found && r.sniffer != nil {
		if opener, ok := f.(upload.Opener); ok {
			sniffed, err := r.sniff(opener)
			if err != nil {
				return false, err
			}
			resolved = sniffed.String()
		}
	}

	f.SetContentType(resolved)
	return true, nil
}

func (r *Resolver) first(filename string) (mimetypes.Type, bool, error) {
	types, err := r.lookup.TypeFor(filename)
	if err != nil {
		if errors.Is(err, mimetypes.ErrInvalidContentType) {
			return mimetypes.Type{}, false, &ProcessingError{Err: err}
		}
		return mimetypes.Type{}, false, fmt.Errorf("content type lookup for %q failed: %w", filename, err)
	}
	if len(types) == 0 {
		return mimetypes.Type{}, false, nil
	}
	return types[0], true, nil
}

func (r *Resolver) sniff(opener upload.Opener) (mimetypes.Type, error) {
	rc, err := opener.Open()
	if err != nil {
		return mimetypes.Type{}, err
	}
	defer func() { _ = rc.Close() }()
	return r.sniffer.Sniff(rc)
}
