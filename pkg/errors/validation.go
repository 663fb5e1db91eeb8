package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// nodeNameRegex matches node names usable as lookup keys and graph labels.
var nodeNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateNodeName validates the name of a board node.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Must start with a letter or underscore
//   - Only letters, digits, '_', '.', '-' afterwards
//   - Maximum length of 64 characters
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "node name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "node name too long (max 64 characters): %q", name)
	}

	if !nodeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid node name: %q", name)
	}

	return nil
}

// ValidateDevicePath validates the path of an output device such as /dev/fb0.
//
// Validation rules:
//   - Path cannot be empty
//   - Must be absolute
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateDevicePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidOutput, "device path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidOutput, "device path contains invalid characters")
		}
	}

	if !strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidOutput, "device path must be absolute: %q", path)
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidOutput, "device path cannot contain path traversal sequences (..)")
	}

	return nil
}
