// Package runid provides run-scoped identifiers for log correlation.
// Every invocation of the executable gets one ID, stamped onto all of
// its log entries.
package runid

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// UUID v4 format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
// where y is one of [8, 9, a, b] (variant bits)
var v4Regex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// New generates a new run identifier (UUID v4).
func New() string {
	return uuid.New().String()
}

// IsValid checks if a string is a valid run identifier.
// Enforces strict UUID v4 format with dashes and correct variant bits.
func IsValid(s string) bool {
	return v4Regex.MatchString(s)
}

// Validate returns an error if the string is not a valid run identifier.
func Validate(s string) error {
	if !IsValid(s) {
		return fmt.Errorf("invalid run id format: %q", s)
	}
	return nil
}
