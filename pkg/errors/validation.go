package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds sector ids and data-track keys.
const maxIDLength = 256

// ValidateSectorID validates a sector id for use as a map key, an SVG
// element id and a DOT node name.
//
// The rules are intentionally conservative:
//   - No empty ids (the registry assigns defaults before validation)
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
func ValidateSectorID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "sector id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "sector id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "sector id contains invalid control characters")
		}
	}
	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "sector id %q has surrounding whitespace", id)
	}
	return nil
}

// ValidateDataKey validates the key of a data track attached to a sector.
func ValidateDataKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "data key cannot be empty")
	}
	if len(key) > maxIDLength {
		return New(ErrCodeInvalidInput, "data key too long (max %d characters)", maxIDLength)
	}
	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "data key %q contains whitespace or control characters", key)
		}
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}
