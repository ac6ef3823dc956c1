package urlutil

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	pattern := DefaultValidationPattern()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		// Optional field
		{
			name:  "empty value",
			value: "",
			want:  true,
		},
		{
			name:  "whitespace only value",
			value: "   ",
			want:  true,
		},

		// Valid URLs
		{
			name:  "full url with port query and fragment",
			value: "http://www.hostname.com:81/path?arg=value#anchor",
			want:  true,
		},
		{
			name:  "https domain",
			value: "https://example.com",
			want:  true,
		},
		{
			name:  "ftp url",
			value: "ftp://files.example.org/pub",
			want:  true,
		},
		{
			name:  "ipv4 host with port",
			value: "http://192.168.0.1:8080/status",
			want:  true,
		},
		{
			name:  "unicode host",
			value: "https://bücher.de",
			want:  true,
		},
		{
			name:  "uppercase url",
			value: "HTTPS://EXAMPLE.COM",
			want:  true,
		},
		{
			name:  "surrounding whitespace is trimmed",
			value: "  https://example.com  ",
			want:  true,
		},
		{
			name:  "hyphenated subdomain",
			value: "https://my-app.staging.example.net/login",
			want:  true,
		},

		// Invalid URLs
		{
			name:  "bare word",
			value: "asefasdfasfasfasfasdfasfasdfas",
			want:  false,
		},
		{
			name:  "bare word with scheme",
			value: "http://asefasdfasfasfasfasdfasfasdfas",
			want:  false,
		},
		{
			name:  "numeric host without dots",
			value: "http://3628126748",
			want:  false,
		},
		{
			name:  "single letter tld",
			value: "http://example.c",
			want:  false,
		},
		{
			name:  "mailto scheme",
			value: "mailto:someone@example.com",
			want:  false,
		},
		{
			name:  "javascript scheme",
			value: "javascript:alert(1)",
			want:  false,
		},
		{
			name:  "space in host",
			value: "http://exa mple.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.value, pattern); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateNilPattern(t *testing.T) {
	if !Validate("not a url", nil) {
		t.Error("Validate() with nil pattern = false, want true")
	}
}

func TestCompilePattern(t *testing.T) {
	re, err := CompilePattern(ClientPattern)
	if err != nil {
		t.Fatalf("CompilePattern() error = %v", err)
	}

	if !Validate("https://x", re) {
		t.Error("expected https://x to match client pattern")
	}
	// Anchoring means a prefix no longer matches.
	if Validate("see https://x", re) {
		t.Error("expected unanchored prefix to be rejected")
	}

	if _, err := CompilePattern("("); err == nil {
		t.Error("CompilePattern(\"(\") error = nil, want error")
	} else if !strings.Contains(err.Error(), "invalid validation pattern") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestCompilePatternDefault(t *testing.T) {
	re, err := CompilePattern(DefaultPattern)
	if err != nil {
		t.Fatalf("CompilePattern(DefaultPattern) error = %v", err)
	}
	if !Validate("https://example.com/a", re) {
		t.Error("wrapped default pattern rejected a valid url")
	}
	if Validate("http://3628126748", re) {
		t.Error("wrapped default pattern accepted a numeric host")
	}
}
