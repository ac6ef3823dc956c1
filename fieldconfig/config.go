package fieldconfig

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jongio/exturl/urlutil"
)

var (
	// ErrUnknownSlot indicates a configuration key that does not exist.
	ErrUnknownSlot = errors.New("unknown configuration slot")
	// ErrNotMapping indicates a non-mapping value for a component map slot.
	ErrNotMapping = errors.New("value must be a mapping")
	// ErrInvalidValue indicates a value of the wrong type for a slot or map entry.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrInvalidPattern indicates a validation pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid validation pattern")
)

// Slot names a configuration entry.
type Slot string

const (
	// SlotDefaultParts holds urlutil.Defaults.
	SlotDefaultParts Slot = "defaultparts"
	// SlotRemoveParts holds urlutil.Removals.
	SlotRemoveParts Slot = "removeparts"
	// SlotHTML5Validation holds a bool.
	SlotHTML5Validation Slot = "html5validation"
	// SlotValidationPattern holds the validation pattern expression.
	SlotValidationPattern Slot = "validregex"
)

// SlotKind determines how Set treats a slot.
type SlotKind int

const (
	// SlotScalar values are replaced.
	SlotScalar SlotKind = iota
	// SlotComponentMap values are merged entry by entry.
	SlotComponentMap
)

var slotKinds = map[Slot]SlotKind{
	SlotDefaultParts:      SlotComponentMap,
	SlotRemoveParts:       SlotComponentMap,
	SlotHTML5Validation:   SlotScalar,
	SlotValidationPattern: SlotScalar,
}

// Slots returns every slot in a stable order.
func Slots() []Slot {
	return []Slot{SlotDefaultParts, SlotRemoveParts, SlotHTML5Validation, SlotValidationPattern}
}

// Kind returns the schema kind of the slot.
func (s Slot) Kind() SlotKind {
	return slotKinds[s]
}

// ParseSlot maps a configuration key to a Slot. Keys are case-insensitive.
func ParseSlot(key string) (Slot, error) {
	s := Slot(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := slotKinds[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, key)
	}
	return s, nil
}

// Config is the configuration of one field. It is safe for concurrent use.
type Config struct {
	mu           sync.RWMutex
	defaultParts urlutil.Defaults
	removeParts  urlutil.Removals
	html5        bool
	patternExpr  string
	pattern      *regexp.Regexp
}

// Default returns a new Config holding the default configuration: https as the
// default scheme, userinfo removed, HTML5 validation on and the default
// validation pattern.
func Default() *Config {
	rules := urlutil.DefaultRules()
	return &Config{
		defaultParts: rules.Defaults,
		removeParts:  rules.Remove,
		html5:        true,
		patternExpr:  urlutil.DefaultPattern,
		pattern:      urlutil.DefaultValidationPattern(),
	}
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cloneLocked()
}

// cloneLocked copies c. The caller holds c.mu.
func (c *Config) cloneLocked() *Config {
	return &Config{
		defaultParts: c.defaultParts.Clone(),
		removeParts:  c.removeParts.Clone(),
		html5:        c.html5,
		patternExpr:  c.patternExpr,
		pattern:      c.pattern,
	}
}

// Set stores value in the slot named key.
//
// Component map slots accept urlutil.Defaults / urlutil.Removals, maps keyed by
// urlutil.Component, or maps keyed by component name (map[string]string,
// map[string]bool, map[string]any). The entries are merged into the existing
// map. Scalar slots are replaced: html5validation takes a bool (or a string
// accepted by strconv.ParseBool); validregex takes a pattern string, a
// *regexp.Regexp, or nil / "" to disable server-side validation.
func (c *Config) Set(key string, value any) error {
	slot, err := ParseSlot(key)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(slot, value)
}

// apply stores value in slot. The caller holds c.mu.
func (c *Config) apply(slot Slot, value any) error {
	switch slot {
	case SlotDefaultParts:
		d, err := toDefaults(value)
		if err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
		c.defaultParts = c.defaultParts.Merge(d)
	case SlotRemoveParts:
		r, err := toRemovals(value)
		if err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
		c.removeParts = c.removeParts.Merge(r)
	case SlotHTML5Validation:
		b, err := toBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
		c.html5 = b
	case SlotValidationPattern:
		expr, re, err := toPattern(value)
		if err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
		c.patternExpr, c.pattern = expr, re
	}
	return nil
}

// SetMany applies every entry of values as Set does, in key order. The
// entries are applied together: on the first error none of them take effect.
func (c *Config) SetMany(values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c.mu.Lock()
	defer c.mu.Unlock()

	staged := c.cloneLocked()
	for _, k := range keys {
		slot, err := ParseSlot(k)
		if err != nil {
			return err
		}
		if err := staged.apply(slot, values[k]); err != nil {
			return err
		}
	}

	c.defaultParts, c.removeParts = staged.defaultParts, staged.removeParts
	c.html5, c.patternExpr, c.pattern = staged.html5, staged.patternExpr, staged.pattern
	return nil
}

// MustSet is like Set but panics on misconfiguration. It is meant for setup
// code where a bad value is a programming error.
func (c *Config) MustSet(key string, value any) *Config {
	if err := c.Set(key, value); err != nil {
		panic(fmt.Sprintf("fieldconfig: %v", err))
	}
	return c
}

// Get returns a copy of the value in the slot named key. The second result is
// false for unknown keys.
func (c *Config) Get(key string) (any, bool) {
	slot, err := ParseSlot(key)
	if err != nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	switch slot {
	case SlotDefaultParts:
		return c.defaultParts.Clone(), true
	case SlotRemoveParts:
		return c.removeParts.Clone(), true
	case SlotHTML5Validation:
		return c.html5, true
	default:
		return c.patternExpr, true
	}
}

// All returns a copy of every slot keyed by slot name.
func (c *Config) All() map[string]any {
	out := make(map[string]any, len(slotKinds))
	for _, s := range Slots() {
		v, _ := c.Get(string(s))
		out[string(s)] = v
	}
	return out
}

// DefaultParts returns a copy of the default components.
func (c *Config) DefaultParts() urlutil.Defaults {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultParts.Clone()
}

// RemoveParts returns a copy of the removal flags.
func (c *Config) RemoveParts() urlutil.Removals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.removeParts.Clone()
}

// DefaultScheme returns the default scheme, or "" if none is configured.
func (c *Config) DefaultScheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultParts[urlutil.Scheme]
}

// HTML5Validation reports whether browser validation hints are enabled.
func (c *Config) HTML5Validation() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.html5
}

// ValidationPattern returns the compiled validation pattern, or nil when
// server-side validation is disabled.
func (c *Config) ValidationPattern() *regexp.Regexp {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pattern
}

// Rules returns a snapshot of the normalization rules.
func (c *Config) Rules() urlutil.Rules {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return urlutil.Rules{
		Defaults: c.defaultParts.Clone(),
		Remove:   c.removeParts.Clone(),
	}
}

// Normalize normalizes rawURL with the current rules.
func (c *Config) Normalize(rawURL string) string {
	return urlutil.Normalize(rawURL, c.Rules())
}

// Validate validates value with the current pattern.
func (c *Config) Validate(value string) bool {
	return urlutil.Validate(value, c.ValidationPattern())
}

func toDefaults(value any) (urlutil.Defaults, error) {
	switch v := value.(type) {
	case urlutil.Defaults:
		return v.Clone(), nil
	case map[urlutil.Component]string:
		return urlutil.Defaults(v).Clone(), nil
	case map[string]string:
		out := make(urlutil.Defaults, len(v))
		for name, s := range v {
			comp, err := urlutil.ParseComponent(name)
			if err != nil {
				return nil, err
			}
			out[comp] = s
		}
		return out, nil
	case map[string]any:
		out := make(urlutil.Defaults, len(v))
		for name, raw := range v {
			comp, err := urlutil.ParseComponent(name)
			if err != nil {
				return nil, err
			}
			switch s := raw.(type) {
			case string:
				out[comp] = s
			case int:
				out[comp] = strconv.Itoa(s)
			default:
				return nil, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValue, name, raw)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrNotMapping, value)
	}
}

func toRemovals(value any) (urlutil.Removals, error) {
	switch v := value.(type) {
	case urlutil.Removals:
		return v.Clone(), nil
	case map[urlutil.Component]bool:
		return urlutil.Removals(v).Clone(), nil
	case map[string]bool:
		out := make(urlutil.Removals, len(v))
		for name, b := range v {
			comp, err := urlutil.ParseComponent(name)
			if err != nil {
				return nil, err
			}
			out[comp] = b
		}
		return out, nil
	case map[string]any:
		out := make(urlutil.Removals, len(v))
		for name, raw := range v {
			comp, err := urlutil.ParseComponent(name)
			if err != nil {
				return nil, err
			}
			b, err := toBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out[comp] = b
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrNotMapping, value)
	}
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: want bool, got %T", ErrInvalidValue, value)
	}
}

func toPattern(value any) (string, *regexp.Regexp, error) {
	switch v := value.(type) {
	case nil:
		return "", nil, nil
	case *regexp.Regexp:
		if v == nil {
			return "", nil, nil
		}
		return v.String(), v, nil
	case string:
		if v == "" {
			return "", nil, nil
		}
		if v == urlutil.DefaultPattern {
			return v, urlutil.DefaultValidationPattern(), nil
		}
		re, err := urlutil.CompilePattern(v)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		return v, re, nil
	default:
		return "", nil, fmt.Errorf("%w: want pattern string, got %T", ErrInvalidValue, value)
	}
}
