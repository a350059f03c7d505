package validate

import (
	"regexp"
	"strings"
)

var (
	reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// UserID trims and validates a user identifier.
func UserID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// ItemID trims and validates a catalog item identifier.
func ItemID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}
