package util

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsUUID reports whether s is a canonical, hyphenated UUID. The braced and
// urn: forms uuid.Parse also accepts are rejected.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
