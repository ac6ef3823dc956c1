package dbfield

import (
	"context"
	"errors"
	"fmt"

	"github.com/jongio/exturl/fieldconfig"
	"github.com/jongio/exturl/formfield"
	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/metrics"
	"github.com/jongio/exturl/urlutil"
)

// ErrTooLong is returned when a normalized URL exceeds the column size.
var ErrTooLong = errors.New("url exceeds column size")

// Record is the persistence collaborator an ExternalURL saves into.
type Record interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
}

// ExternalURL is a URL column.
type ExternalURL struct {
	Name  string
	Value string
	Size  int
}

// New returns a column named name with the default size.
func New(name string) *ExternalURL {
	return &ExternalURL{Name: name, Size: urlutil.MaxLength}
}

// SetValue stores value as is. Normalization happens in SaveInto.
func (e *ExternalURL) SetValue(value string) *ExternalURL {
	e.Value = value
	return e
}

// URL returns the stored value.
func (e *ExternalURL) URL() string {
	return e.Value
}

// String renders the value for templates.
func (e *ExternalURL) String() string {
	return e.Value
}

// Domain returns the host of the stored URL.
func (e *ExternalURL) Domain() string { return urlutil.Domain(e.Value) }

// DomainShort returns the host without a leading "www.".
func (e *ExternalURL) DomainShort() string { return urlutil.DomainShort(e.Value) }

// NoWWW returns the stored string with leading "www." prefixes removed.
func (e *ExternalURL) NoWWW() string { return urlutil.NoWWW(e.Value) }

// Path returns the path without surrounding slashes.
func (e *ExternalURL) Path() string { return urlutil.PathOf(e.Value) }

// Nice returns the host and path only.
func (e *ExternalURL) Nice() string { return urlutil.Nice(e.Value) }

// Icon returns the favicon URL of the domain.
func (e *ExternalURL) Icon() string { return urlutil.Icon(e.Value) }

// Views returns every derived view.
func (e *ExternalURL) Views() urlutil.Views { return urlutil.Describe(e.Value) }

// SaveInto normalizes the value with cfg, or with the default configuration
// when cfg is nil, and writes it into rec under the column name. The column
// takes the normalized value only once rec accepted it.
func (e *ExternalURL) SaveInto(ctx context.Context, rec Record, cfg *fieldconfig.Config) error {
	if cfg == nil {
		cfg = fieldconfig.Default()
	}

	value := cfg.Normalize(e.Value)
	metrics.RecordNormalize(value)

	if e.Size > 0 && len(value) > e.Size {
		return fmt.Errorf("%w: %s is %d characters, limit %d", ErrTooLong, e.Name, len(value), e.Size)
	}
	if err := rec.Set(ctx, e.Name, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", e.Name, err)
	}
	e.Value = value

	logutil.Debug("saved external url", "column", e.Name, "url", value)
	return nil
}

// LoadFrom reads the column from rec. The value is taken verbatim.
func (e *ExternalURL) LoadFrom(ctx context.Context, rec Record) error {
	value, err := rec.Get(ctx, e.Name)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", e.Name, err)
	}
	e.Value = value
	return nil
}

// ScaffoldFormField returns a form field for this column, limited to the
// column size. title defaults to the column name.
func (e *ExternalURL) ScaffoldFormField(title string, opts ...formfield.Option) *formfield.Field {
	if title == "" {
		title = e.Name
	}
	opts = append([]formfield.Option{formfield.WithMaxLength(e.Size)}, opts...)
	return formfield.New(e.Name, title, opts...)
}
