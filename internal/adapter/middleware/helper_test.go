package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{strings.Repeat("a", 32), true},
		{strings.ToUpper(strings.Repeat("a", 32)), true}, // lowered before matching
		{"  " + strings.Repeat("0", 32) + "  ", true},
		{"3b9aca00-5a7d-4d5e-9c5b-1f2e3d4c5b6a", true}, // uuid form
		{"not32hex", false},
		{"", false},
		{strings.Repeat("g", 32), false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.in); got != tc.want {
			t.Errorf("validReqID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.Unix() != 1736123456 {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("epoch milliseconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456789")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.UnixMilli() != 1736123456789 {
			t.Fatalf("got %v", got)
		}
	})
	t.Run("rfc3339 with zone", func(t *testing.T) {
		got, err := parseRequestAt("2025-09-05T10:00:00+07:00")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.Location() != time.UTC {
			t.Fatalf("not normalized to UTC: %v", got)
		}
	})
	t.Run("rejects naive timestamps", func(t *testing.T) {
		if _, err := parseRequestAt("2025-09-05 10:00:00"); err == nil {
			t.Fatal("expected error for timestamp without zone")
		}
	})
	t.Run("rejects empty", func(t *testing.T) {
		if _, err := parseRequestAt(""); err == nil {
			t.Fatal("expected error for empty header")
		}
	})
}

func TestBuildKey_BindsIdentity(t *testing.T) {
	a := buildKey("POST", "/api/expenses", "user-a", "req-1")
	b := buildKey("POST", "/api/expenses", "user-b", "req-1")
	if a == b {
		t.Fatal("keys for different users must differ")
	}
	if !strings.HasPrefix(a, "idemp:post:") {
		t.Fatalf("unexpected key shape: %q", a)
	}
}
