package urlutil

import (
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
)

// ErrUnparseable is returned by Parse for input that is not a usable URL.
var ErrUnparseable = errors.New("unparseable url")

// Parts holds the components present in a parsed URL. A component is present
// only when its key exists in the map.
type Parts map[Component]string

// Has reports whether component c is present.
func (p Parts) Has(c Component) bool {
	_, ok := p[c]
	return ok
}

// Clone returns a copy of p.
func (p Parts) Clone() Parts {
	out := make(Parts, len(p))
	for c, v := range p {
		out[c] = v
	}
	return out
}

// Without returns a copy of p with the given components removed.
func (p Parts) Without(components ...Component) Parts {
	out := p.Clone()
	for _, c := range components {
		delete(out, c)
	}
	return out
}

// Parse splits rawURL into its components using net/url.Parse.
//
// Parse fails when net/url rejects the input, or when the input names an
// authority ("scheme://") without a host, such as "http://" or "http:///x".
func Parse(rawURL string) (Parts, error) {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	if u.Host == "" && strings.Contains(rawURL, "://") {
		return nil, fmt.Errorf("%w: missing host in %q", ErrUnparseable, rawURL)
	}

	p := make(Parts)
	if u.Scheme != "" {
		p[Scheme] = u.Scheme
	}
	if u.User != nil {
		if name := u.User.Username(); name != "" {
			p[User] = name
		}
		if pass, ok := u.User.Password(); ok && pass != "" {
			p[Password] = pass
		}
	}
	if host := u.Hostname(); host != "" {
		p[Host] = host
	}
	if port := u.Port(); port != "" {
		p[Port] = port
	}
	switch {
	case u.Opaque != "":
		p[Path] = u.Opaque
	case u.EscapedPath() != "":
		p[Path] = u.EscapedPath()
	}
	if u.RawQuery != "" {
		p[Query] = u.RawQuery
	}
	if u.Fragment != "" {
		p[Fragment] = u.EscapedFragment()
	}
	return p, nil
}

// String rebuilds a URL from the present components.
//
// Userinfo and port are written only alongside a host, and a password only
// alongside a user, so removing any of them never leaves a stray "@" or ":".
func (p Parts) String() string {
	var b strings.Builder

	if scheme := p[Scheme]; scheme != "" {
		b.WriteString(scheme)
		b.WriteString("://")
	}

	host := p[Host]
	if host != "" {
		if user := p[User]; user != "" {
			var info *neturl.Userinfo
			if pass := p[Password]; pass != "" {
				info = neturl.UserPassword(user, pass)
			} else {
				info = neturl.User(user)
			}
			b.WriteString(info.String())
			b.WriteByte('@')
		}
		// Hostname is unescaped; a literal "%" (an IPv6 zone) must be
		// written back as "%25" to parse again.
		host = strings.ReplaceAll(host, "%", "%25")
		if strings.Contains(host, ":") {
			b.WriteByte('[')
			b.WriteString(host)
			b.WriteByte(']')
		} else {
			b.WriteString(host)
		}
		if port := p[Port]; port != "" {
			b.WriteByte(':')
			b.WriteString(port)
		}
	}

	if path := p[Path]; path != "" {
		if host != "" && !strings.HasPrefix(path, "/") {
			b.WriteByte('/')
		}
		b.WriteString(path)
	}
	if query := p[Query]; query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if fragment := p[Fragment]; fragment != "" {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String()
}
