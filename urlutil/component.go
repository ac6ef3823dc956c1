package urlutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownComponent is returned when a component name is not recognized.
var ErrUnknownComponent = errors.New("unknown url component")

// Component identifies one part of a URL.
type Component int

const (
	// Scheme is the protocol, e.g. "https".
	Scheme Component = iota
	// User is the user name of the userinfo section.
	User
	// Password is the password of the userinfo section.
	Password
	// Host is the host name or IP literal (without brackets).
	Host
	// Port is the port number.
	Port
	// Path is the escaped path, including its leading slash.
	Path
	// Query is the raw query without the leading "?".
	Query
	// Fragment is the escaped fragment without the leading "#".
	Fragment
)

var componentNames = [...]string{
	Scheme:   "scheme",
	User:     "user",
	Password: "pass",
	Host:     "host",
	Port:     "port",
	Path:     "path",
	Query:    "query",
	Fragment: "fragment",
}

// Components returns every component in URL order.
func Components() []Component {
	return []Component{Scheme, User, Password, Host, Port, Path, Query, Fragment}
}

// String returns the configuration name of the component.
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return fmt.Sprintf("component(%d)", int(c))
	}
	return componentNames[c]
}

// Valid reports whether c is one of the defined components.
func (c Component) Valid() bool {
	return c >= Scheme && c <= Fragment
}

// ParseComponent maps a configuration name to a Component.
// Names are case-insensitive; "password" is accepted as an alias of "pass".
func ParseComponent(name string) (Component, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "password" {
		return Password, nil
	}
	for i, known := range componentNames {
		if n == known {
			return Component(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Component) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownComponent, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Component) UnmarshalText(text []byte) error {
	parsed, err := ParseComponent(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Defaults maps a component to the value used when a URL lacks it.
type Defaults map[Component]string

// Clone returns a copy of d.
func (d Defaults) Clone() Defaults {
	out := make(Defaults, len(d))
	for c, v := range d {
		out[c] = v
	}
	return out
}

// Merge returns a copy of d with every entry of other added or overwritten.
func (d Defaults) Merge(other Defaults) Defaults {
	out := d.Clone()
	for c, v := range other {
		out[c] = v
	}
	return out
}

// Removals marks the components stripped during normalization.
type Removals map[Component]bool

// Clone returns a copy of r.
func (r Removals) Clone() Removals {
	out := make(Removals, len(r))
	for c, v := range r {
		out[c] = v
	}
	return out
}

// Merge returns a copy of r with every entry of other added or overwritten.
func (r Removals) Merge(other Removals) Removals {
	out := r.Clone()
	for c, v := range other {
		out[c] = v
	}
	return out
}

// Enabled returns the components marked for removal, in URL order.
func (r Removals) Enabled() []Component {
	var out []Component
	for c, on := range r {
		if on {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
