package urlutil

import "strings"

// IconService is the favicon service used by Icon.
const IconService = "https://icons.duckduckgo.com/ip3/"

// niceRemoved lists the components dropped by Nice.
var niceRemoved = []Component{Scheme, User, Password, Port, Query, Fragment}

// Domain returns the host of canonical, or "" for empty or unparseable input.
func Domain(canonical string) string {
	if canonical == "" {
		return ""
	}
	parts, err := Parse(canonical)
	if err != nil {
		return ""
	}
	return parts[Host]
}

// DomainShort returns Domain with a single leading "www." removed.
func DomainShort(canonical string) string {
	return strings.TrimPrefix(Domain(canonical), "www.")
}

// NoWWW strips every leading "www." from the raw string. It works on the
// literal value, not on the parsed host, so a value carrying a scheme is
// returned unchanged.
func NoWWW(value string) string {
	for strings.HasPrefix(value, "www.") {
		value = value[len("www."):]
	}
	return value
}

// PathOf returns the path of canonical without leading or trailing slashes.
func PathOf(canonical string) string {
	if canonical == "" {
		return ""
	}
	parts, err := Parse(canonical)
	if err != nil {
		return ""
	}
	return strings.Trim(parts[Path], "/")
}

// Nice returns a compact display form: host and path only.
//
// Example:
//
//	urlutil.Nice("http://www.hostname.com:81/path?arg=value#anchor")
//	// Returns: "www.hostname.com/path"
func Nice(canonical string) string {
	if canonical == "" {
		return ""
	}
	parts, err := Parse(canonical)
	if err != nil {
		return ""
	}
	return strings.TrimRight(parts.Without(niceRemoved...).String(), "/")
}

// Icon returns the favicon service URL for the short domain of canonical.
func Icon(canonical string) string {
	domain := DomainShort(canonical)
	if domain == "" {
		return ""
	}
	return IconService + domain + ".ico"
}

// Views bundles every derived view of a canonical URL.
type Views struct {
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	DomainShort string `json:"domainShort"`
	NoWWW       string `json:"noWWW"`
	Path        string `json:"path"`
	Nice        string `json:"nice"`
	Icon        string `json:"icon"`
}

// Describe returns every view of canonical.
func Describe(canonical string) Views {
	return Views{
		URL:         canonical,
		Domain:      Domain(canonical),
		DomainShort: DomainShort(canonical),
		NoWWW:       NoWWW(canonical),
		Path:        PathOf(canonical),
		Nice:        Nice(canonical),
		Icon:        Icon(canonical),
	}
}
