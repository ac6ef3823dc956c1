package urlutil

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPattern accepts http, https and ftp URLs whose host is an IPv4
// literal or a dotted host name ending in a 2-6 letter top level domain, with
// an optional port and an optional path, query and fragment. Host labels may
// contain letters from U+00A1 to U+FFFF. Matching is case-insensitive.
//
// Adapted from https://gist.github.com/dperini/729294.
const DefaultPattern = `(?i)^(?:(?:https?|ftp)://)` +
	`(?:\S+(?::\S*)?@|\d{1,3}(?:\.\d{1,3}){3}|` +
	`(?:(?:[a-z\d\x{00a1}-\x{ffff}]+-?)*[a-z\d\x{00a1}-\x{ffff}]+)` +
	`(?:\.(?:[a-z\d\x{00a1}-\x{ffff}]+-?)*[a-z\d\x{00a1}-\x{ffff}]+)*` +
	`(?:\.[a-z\x{00a1}-\x{ffff}]{2,6}))` +
	`(?::\d+)?(?:[^\s]*)?$`

// ClientPattern is the simplified pattern handed to browsers for HTML5
// validation.
const ClientPattern = `https?://.+`

// ValidationMessage is reported when a value does not match the pattern.
const ValidationMessage = "Please enter a valid URL"

var defaultPattern = regexp.MustCompile(DefaultPattern)

// DefaultValidationPattern returns the compiled DefaultPattern.
func DefaultValidationPattern() *regexp.Regexp {
	return defaultPattern
}

// CompilePattern compiles expr so that it must match a whole value.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid validation pattern: %w", err)
	}
	return re, nil
}

// Validate reports whether value is acceptable for an optional URL field.
//
// The value is trimmed first. An empty value is always valid. A nil pattern
// accepts everything; otherwise the value must match pattern.
//
// Example:
//
//	urlutil.Validate("https://example.com", urlutil.DefaultValidationPattern()) // true
//	urlutil.Validate("http://3628126748", urlutil.DefaultValidationPattern())   // false
func Validate(value string, pattern *regexp.Regexp) bool {
	value = strings.TrimSpace(value)
	if value == "" || pattern == nil {
		return true
	}
	return pattern.MatchString(value)
}
