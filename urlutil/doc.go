// Package urlutil provides URL normalization, validation and decomposition for
// externally supplied links.
//
// It is the core used by the form field (formfield), the storage type (dbfield)
// and the CLI. It builds on the standard library's net/url.Parse and adds a
// rebuild step that is driven by per-component rules: default values that fill
// in missing components, and components that are stripped before the URL is
// stored.
//
// # Usage
//
// Use Normalize to turn user input into a canonical URL:
//
//	import "github.com/jongio/exturl/urlutil"
//
//	rules := urlutil.Rules{
//		Defaults: urlutil.Defaults{urlutil.Scheme: "https"},
//		Remove:   urlutil.Removals{urlutil.User: true, urlutil.Password: true},
//	}
//	canonical := urlutil.Normalize("user:pw@www.example.com/path/", rules)
//	// Returns: "https://www.example.com/path"
//
// Unparseable input (for example "http://") normalizes to the empty string. The
// field this package serves is optional, so a bad value is treated as no value.
//
// Use Validate to check a value against a pattern at submit time:
//
//	if !urlutil.Validate(canonical, urlutil.DefaultValidationPattern()) {
//		// report "Please enter a valid URL"
//	}
//
// Use the accessors to derive display values from a stored URL:
//
//	urlutil.Domain("https://www.example.com/a")      // "www.example.com"
//	urlutil.DomainShort("https://www.example.com/a") // "example.com"
//	urlutil.Nice("https://www.example.com:81/a?q=1") // "www.example.com/a"
//
// # Canonical form
//
// A canonical URL is either empty or has the form scheme://host[:port][/path]
// [?query][#fragment] with the removed components absent and no trailing slash.
// Normalize is idempotent: normalizing a canonical URL with the same rules
// returns it unchanged.
//
// # Non-goals
//
// This is not a general URL library: it assumes HTTP, HTTPS and FTP style
// URLs. It does not defend against SSRF or IDN homograph attacks.
package urlutil
