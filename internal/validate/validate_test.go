package validate_test

import (
	"testing"

	"github.com/ravi1983/cartvault/internal/validate"
)

func TestIDs(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"u1", "u1", true},
		{"  u1  ", "u1", true},
		{"cognito|u42", "", false}, // pipe not allowed in stored ids
		{"a_b-C9", "a_b-C9", true},
		{"", "", false},
		{"   ", "", false},
		{"has space", "", false},
		{"101", "101", true},
	}
	for _, c := range cases {
		if got, ok := validate.UserID(c.in); ok != c.ok || (ok && got != c.want) {
			t.Errorf("UserID(%q) = %q,%v; want %q,%v", c.in, got, ok, c.want, c.ok)
		}
		if got, ok := validate.ItemID(c.in); ok != c.ok || (ok && got != c.want) {
			t.Errorf("ItemID(%q) = %q,%v; want %q,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}
