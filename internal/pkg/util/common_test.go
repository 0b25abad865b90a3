package util

import (
	"testing"
	"unicode/utf8"
)

func TestGenerateCode(t *testing.T) {
	for _, length := range []int{4, 6} {
		code := GenerateCode(length)
		if len(code) != length {
			t.Fatalf("len = %d, want %d", len(code), length)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("code %q contains non-digit %q", code, c)
			}
		}
	}
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateCode(6)] = true
	}
	if len(seen) < 2 {
		t.Fatal("repeated calls produced a single code")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "hello", 10, "hello"},
		{"ascii cut at limit", "hello world", 5, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"multibyte kept whole", "héllo wörld", 6, "héllo "},
		{"naira symbol not split", "₦₦₦₦", 2, "₦₦"},
		{"emoji not split", "🙂🙂🙂", 2, "🙂🙂"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.in, tt.max)
			if got != tt.want {
				t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("result %q is not valid utf-8", got)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ada@unilag.edu.ng", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"two@@signs.com", false},
		{"spaces in@mail.com", false},
		{"nodot@domain", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsDisposableEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"x@mailinator.com", true},
		{"x@YOPMAIL.com", true},
		{"x@unilag.edu.ng", false},
		{"not-an-email", false},
	}
	for _, tt := range tests {
		if got := IsDisposableEmail(tt.email); got != tt.want {
			t.Errorf("IsDisposableEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
