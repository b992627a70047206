package utils

import (
	"testing"

	"go.uber.org/zap"
)

func TestProcessEntry(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	cases := []struct {
		in   string
		want string
	}{
		{"  http://example.com  ", "http://example.com"},
		{"user@example.com", "user@example.com"},
		// Decomposed e + combining acute normalizes to the composed form
		{"café.com", "café.com"},
		{"", ""},
	}

	for _, c := range cases {
		if got := tp.ProcessEntry(c.in); got != c.want {
			t.Errorf("ProcessEntry(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	valid := "http://example.com"
	if got := tp.SanitizeUTF8(valid); got != valid {
		t.Errorf("SanitizeUTF8 changed valid input: %q", got)
	}

	invalid := "abc\xffdef"
	got := tp.SanitizeUTF8(invalid)
	if got != "abcdef" {
		t.Errorf("SanitizeUTF8(%q) = %q; want %q", invalid, got, "abcdef")
	}
}
