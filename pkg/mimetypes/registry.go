package mimetypes

import (
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"github.com/h2non/filetype"
)

// Option configures a Registry.
type Option func(*Registry)

// WithSystemTypes toggles the standard library extension table.
func WithSystemTypes(enabled bool) Option {
	return func(r *Registry) { r.system = enabled }
}

// WithFiletypeTypes toggles the h2non/filetype extension table.
func WithFiletypeTypes(enabled bool) Option {
	return func(r *Registry) { r.filetype = enabled }
}

type customEntry struct {
	ext       string
	mediaType string
}

// Registry is the default Lookup. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	custom   []customEntry
	system   bool
	filetype bool
}

var _ Lookup = (*Registry)(nil)

// NewRegistry returns a registry with both built-in tables enabled.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{system: true, filetype: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers mediaType for extension. The extension may be given with or
// without the leading dot. The value is not validated here; a malformed value
// makes TypeFor fail for that extension.
func (r *Registry) Add(extension, mediaType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom = append(r.custom, customEntry{
		ext:       normalizeExtension(extension),
		mediaType: strings.TrimSpace(mediaType),
	})
}

// TypeFor returns every type registered for the extension of filename.
// An unknown extension yields an empty slice and a nil error.
func (r *Registry) TypeFor(filename string) ([]Type, error) {
	ext := ExtensionOf(filename)
	if ext == "" {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		result []Type
		seen   = make(map[string]struct{})
	)
	add := func(raw, source string) error {
		t, err := parseType(raw, ext, source)
		if err != nil {
			return err
		}
		if _, ok := seen[t.MediaType]; ok {
			return nil
		}
		seen[t.MediaType] = struct{}{}
		result = append(result, t)
		return nil
	}

	for _, entry := range r.custom {
		if entry.ext != ext {
			continue
		}
		if err := add(entry.mediaType, SourceCustom); err != nil {
			return nil, err
		}
	}

	if r.filetype {
		if kind := filetype.GetType(ext); kind.MIME.Value != "" {
			if err := add(kind.MIME.Value, SourceFiletype); err != nil {
				return nil, err
			}
		}
	}

	if r.system {
		if value := mime.TypeByExtension("." + ext); value != "" {
			if err := add(value, SourceSystem); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// ExtensionOf returns the lower-cased extension of filename without the dot.
// A name without a dot is treated as a bare extension, so "jpg" yields "jpg".
func ExtensionOf(filename string) string {
	base := strings.ToLower(strings.TrimSpace(filepath.Base(filename)))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[idx+1:]
	}
	return base
}

func normalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}
