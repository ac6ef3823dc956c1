package urlutil

import (
	"regexp"
	"strings"
)

// MaxLength is the storage size of an external URL. It matches the practical
// limit of common browsers (2083 characters).
const MaxLength = 2083

var schemePrefix = regexp.MustCompile(`^[a-zA-Z]+://`)

// Rules drive the rebuild performed by Normalize.
type Rules struct {
	// Defaults fills in components missing from the parsed URL.
	Defaults Defaults
	// Remove lists the components stripped before rebuilding.
	Remove Removals
}

// DefaultRules returns the rules of a freshly constructed field: https as the
// default scheme and userinfo stripped.
func DefaultRules() Rules {
	return Rules{
		Defaults: Defaults{Scheme: "https"},
		Remove: Removals{
			Scheme:   false,
			User:     true,
			Password: true,
			Host:     false,
			Port:     false,
			Path:     false,
			Query:    false,
			Fragment: false,
		},
	}
}

// HasScheme reports whether rawURL starts with "<letters>://".
func HasScheme(rawURL string) bool {
	return schemePrefix.MatchString(rawURL)
}

// EnsureScheme prepends defaultScheme + "://" when rawURL has no scheme.
//
// Example:
//
//	urlutil.EnsureScheme("example.com", "https")
//	// Returns: "https://example.com"
//
//	urlutil.EnsureScheme("ftp://example.com", "https")
//	// Returns: "ftp://example.com" (already has a scheme)
func EnsureScheme(rawURL, defaultScheme string) string {
	if HasScheme(rawURL) {
		return rawURL
	}
	return defaultScheme + "://" + rawURL
}

// Normalize rebuilds rawURL into its canonical form.
//
// The steps are:
//   - empty input, or the literal "0", yields ""
//   - a missing scheme is replaced by rules.Defaults[Scheme]
//   - unparseable input yields ""
//   - components marked in rules.Remove are deleted
//   - components still missing are filled from rules.Defaults
//   - a result without a scheme or a host yields ""
//   - trailing slashes are stripped
//
// Surrounding whitespace is ignored. Normalize never panics and never returns
// an error: a value that cannot be parsed is treated as no value.
func Normalize(rawURL string, rules Rules) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || rawURL == "0" {
		return ""
	}

	parts, err := Parse(EnsureScheme(rawURL, rules.Defaults[Scheme]))
	if err != nil {
		return ""
	}

	for c := range parts {
		if rules.Remove[c] {
			delete(parts, c)
		}
	}
	for c, v := range rules.Defaults {
		if v == "" {
			continue
		}
		if !parts.Has(c) {
			parts[c] = v
		}
	}

	if !parts.Has(Scheme) || !parts.Has(Host) {
		return ""
	}
	return strings.TrimRight(parts.String(), "/")
}
