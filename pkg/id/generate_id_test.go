package id

import (
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
var reHex16 = regexp.MustCompile(`^[a-f0-9]{16}$`)

func TestNewID32_FormatAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		got := NewID32()
		if !reHex32.MatchString(got) {
			t.Fatalf("NewID32() = %q, want 32-char lowercase hex", got)
		}
		if _, dup := seen[got]; dup {
			t.Fatalf("NewID32() produced duplicate %q", got)
		}
		seen[got] = struct{}{}
	}
}

func TestNewTempPassword_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := NewTempPassword()
		if !reHex16.MatchString(got) {
			t.Fatalf("NewTempPassword() = %q, want 16-char lowercase hex", got)
		}
	}
}
