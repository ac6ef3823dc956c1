package fieldconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/security"
	"github.com/jongio/exturl/urlutil"
)

// Environment variables read by ApplyEnv.
const (
	// EnvDefaultScheme overrides defaultparts.scheme.
	EnvDefaultScheme = "EXTURL_DEFAULT_SCHEME"
	// EnvRemoveParts adds a comma separated list of components to removeparts.
	EnvRemoveParts = "EXTURL_REMOVE_PARTS"
	// EnvHTML5Validation overrides html5validation.
	EnvHTML5Validation = "EXTURL_HTML5_VALIDATION"
)

// Document is the serialized form of a Config.
type Document struct {
	DefaultParts    map[string]string `yaml:"defaultparts" json:"defaultparts"`
	RemoveParts     map[string]bool   `yaml:"removeparts" json:"removeparts"`
	HTML5Validation bool              `yaml:"html5validation" json:"html5validation"`
	ValidRegex      string            `yaml:"validregex" json:"validregex"`
}

// Document returns the serialized form of c.
func (c *Config) Document() Document {
	doc := Document{
		DefaultParts: make(map[string]string),
		RemoveParts:  make(map[string]bool),
	}
	for comp, v := range c.DefaultParts() {
		doc.DefaultParts[comp.String()] = v
	}
	for comp, v := range c.RemoveParts() {
		doc.RemoveParts[comp.String()] = v
	}
	doc.HTML5Validation = c.HTML5Validation()
	if expr, ok := c.Get(string(SlotValidationPattern)); ok {
		doc.ValidRegex, _ = expr.(string)
	}
	return doc
}

// LoadFile reads a YAML configuration file and applies it over the defaults.
// A missing file yields the default configuration. A file writable by group
// or others is loaded with a warning.
func LoadFile(path string) (*Config, error) {
	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid field config path: %w", err)
	}

	// #nosec G304 -- path is validated above
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read field config: %w", err)
	}
	if err := security.ValidateFilePermissions(path); errors.Is(err, security.ErrInsecureFilePermissions) {
		logutil.Warn("field config is writable by other users", "path", path)
	}

	cfg := Default()
	if err := cfg.Load(data); err != nil {
		return nil, fmt.Errorf("failed to load field config %s: %w", path, err)
	}
	return cfg, nil
}

// Load applies YAML data to c. Only the keys present in data are touched, so
// component maps are merged and scalars replaced exactly as with Set.
func (c *Config) Load(data []byte) error {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse field config: %w", err)
	}
	return c.SetMany(values)
}

// ApplyEnv applies the EXTURL_* environment overrides to c.
func (c *Config) ApplyEnv() error {
	if scheme := strings.TrimSpace(os.Getenv(EnvDefaultScheme)); scheme != "" {
		if err := c.Set(string(SlotDefaultParts), urlutil.Defaults{urlutil.Scheme: scheme}); err != nil {
			return err
		}
	}

	if list := os.Getenv(EnvRemoveParts); list != "" {
		remove := make(urlutil.Removals)
		for _, name := range strings.Split(list, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			comp, err := urlutil.ParseComponent(name)
			if err != nil {
				return fmt.Errorf("%s: %w", EnvRemoveParts, err)
			}
			remove[comp] = true
		}
		if err := c.Set(string(SlotRemoveParts), remove); err != nil {
			return err
		}
	}

	if v := os.Getenv(EnvHTML5Validation); v != "" {
		if err := c.Set(string(SlotHTML5Validation), v); err != nil {
			return fmt.Errorf("%s: %w", EnvHTML5Validation, err)
		}
	}
	return nil
}
