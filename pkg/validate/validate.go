// Package validate holds the field checks shared by the CheckPipes.
package validate

import (
	"fmt"
	"mime"
	"strings"
)

// RequiredString validates that a string field is not empty
func RequiredString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// MediaType validates a type/subtype value. Parameters are allowed.
func MediaType(value, field string) error {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return fmt.Errorf("invalid media type for %s: %q: %w", field, value, err)
	}
	if !strings.Contains(mediaType, "/") {
		return fmt.Errorf("invalid media type for %s: %q: missing subtype", field, value)
	}
	return nil
}

// Extension validates a file extension such as "jpg" or ".jpg"
func Extension(value, field string) error {
	ext := strings.TrimPrefix(value, ".")
	if ext == "" {
		return fmt.Errorf("%s is required", field)
	}
	if strings.ContainsAny(ext, `./\ `) {
		return fmt.Errorf("invalid extension for %s: %q", field, value)
	}
	return nil
}
