package formfield

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"sync"

	"github.com/jongio/exturl/fieldconfig"
	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/metrics"
	"github.com/jongio/exturl/urlutil"
)

// FieldType is the CSS type string of the field.
const FieldType = "url text"

// PlaceholderHost is appended to the default scheme to build the placeholder.
const PlaceholderHost = "example.com"

// Field is a form field for an external URL. It is safe for concurrent use.
type Field struct {
	mu         sync.RWMutex
	name       string
	title      string
	value      string
	rightTitle string
	maxLength  int
	attrs      map[string]string
	config     *fieldconfig.Config
	log        *logutil.ComponentLogger
}

// Option configures a Field.
type Option func(*Field)

// WithConfig makes the field use a copy of cfg instead of the defaults.
func WithConfig(cfg *fieldconfig.Config) Option {
	return func(f *Field) {
		if cfg != nil {
			f.config = cfg.Clone()
		}
	}
}

// WithMaxLength sets the maxlength attribute.
func WithMaxLength(n int) Option {
	return func(f *Field) {
		f.maxLength = n
	}
}

// WithRightTitle sets the text shown to the right of the input.
func WithRightTitle(text string) Option {
	return func(f *Field) {
		f.rightTitle = text
	}
}

// New creates a field named name. Options are applied before any value is set.
func New(name, title string, opts ...Option) *Field {
	f := &Field{
		name:   name,
		title:  title,
		attrs:  make(map[string]string),
		config: fieldconfig.Default(),
		log:    logutil.NewLogger("formfield").WithFields("field", name),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Title returns the field title.
func (f *Field) Title() string { return f.title }

// Type returns FieldType.
func (f *Field) Type() string { return FieldType }

// SetValue normalizes raw and stores the result. Input that cannot be parsed
// is stored as "".
func (f *Field) SetValue(raw string) *Field {
	value := ""
	if raw != "" {
		value = f.config.Normalize(raw)
		metrics.RecordNormalize(value)
		if value == "" {
			f.log.Debug("discarded unparseable url", "input", raw)
		}
	}

	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
	return f
}

// Value returns the stored value.
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// DataValue returns the value to persist. It is the normalized value.
func (f *Field) DataValue() string {
	return f.Value()
}

// SetMaxLength sets the maxlength attribute; 0 removes it.
func (f *Field) SetMaxLength(n int) *Field {
	f.mu.Lock()
	f.maxLength = n
	f.mu.Unlock()
	return f
}

// MaxLength returns the maxlength attribute.
func (f *Field) MaxLength() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.maxLength
}

// SetAttribute sets an HTML attribute explicitly. An explicit placeholder
// suppresses the generated one.
func (f *Field) SetAttribute(name, value string) *Field {
	f.mu.Lock()
	f.attrs[name] = value
	f.mu.Unlock()
	return f
}

// SetRightTitle sets the text shown to the right of the input.
func (f *Field) SetRightTitle(text string) *Field {
	f.mu.Lock()
	f.rightTitle = text
	f.mu.Unlock()
	return f
}

// Attributes returns the HTML attributes of the input element.
//
// A placeholder of the form "<scheme>://example.com" is added unless one was
// set explicitly. When HTML5 validation is enabled the input gets type "url"
// and the simplified client pattern; these override explicit values.
func (f *Field) Attributes() map[string]string {
	f.mu.RLock()
	attrs := map[string]string{
		"type":  "text",
		"name":  f.name,
		"value": f.value,
	}
	if f.maxLength > 0 {
		attrs["maxlength"] = strconv.Itoa(f.maxLength)
	}
	for k, v := range f.attrs {
		attrs[k] = v
	}
	f.mu.RUnlock()

	if _, ok := attrs["placeholder"]; !ok {
		attrs["placeholder"] = f.config.DefaultScheme() + "://" + PlaceholderHost
	}
	if f.config.HTML5Validation() {
		attrs["type"] = "url"
		attrs["pattern"] = urlutil.ClientPattern
	}
	return attrs
}

// RightTitle returns the right title, followed by a link that opens the
// current value in a new tab when a value is set.
func (f *Field) RightTitle() template.HTML {
	f.mu.RLock()
	title, value := f.rightTitle, f.value
	f.mu.RUnlock()

	var b strings.Builder
	b.WriteString(template.HTMLEscapeString(title))
	if value != "" {
		fmt.Fprintf(&b,
			`<a href="%s" target="_blank" onclick="event.stopPropagation();" rel="noreferrer noopener">open ↗</a>`,
			template.HTMLEscapeString(value))
	}
	// #nosec G203 -- title and value are escaped above
	return template.HTML(b.String())
}

// Validate trims the value and checks it against the validation pattern. On
// failure it reports a single error for the field to v and returns false. An
// empty value is valid.
func (f *Field) Validate(v Validator) bool {
	f.mu.Lock()
	f.value = strings.TrimSpace(f.value)
	value := f.value
	f.mu.Unlock()

	valid := f.config.Validate(value)
	metrics.RecordValidate(valid)
	if !valid {
		f.log.Debug("validation failed", "value", value)
		if v != nil {
			v.ValidationError(f.name, urlutil.ValidationMessage, KindValidation)
		}
	}
	return valid
}

// SetConfig sets one configuration slot of this field. See fieldconfig.Config.Set.
func (f *Field) SetConfig(key string, value any) error {
	return f.config.Set(key, value)
}

// SetConfigs sets several configuration slots of this field.
func (f *Field) SetConfigs(values map[string]any) error {
	return f.config.SetMany(values)
}

// GetConfig returns one configuration slot of this field.
func (f *Field) GetConfig(key string) (any, bool) {
	return f.config.Get(key)
}

// Config returns the configuration owned by this field. Changes made through
// it apply to the field.
func (f *Field) Config() *fieldconfig.Config {
	return f.config
}
