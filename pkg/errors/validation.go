package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds element, component, cluster and relationship names.
const maxNameLength = 256

// ValidateName validates a document name (element, component, version,
// relationship) for safety. The kind is used in the message only.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No leading or trailing whitespace
//   - No " / " or " - " separators, which are reserved for qualified names
//   - Maximum length of 256 characters
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "%s name too long (max %d characters)", kind, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "%s name %q contains invalid control characters", kind, name)
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidName, "%s name %q has leading or trailing whitespace", kind, name)
	}

	for _, sep := range []string{" / ", " - ", " --> "} {
		if strings.Contains(name, sep) {
			return New(ErrCodeInvalidName, "%s name %q contains reserved separator %q", kind, name, sep)
		}
	}

	return nil
}
