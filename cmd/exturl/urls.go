package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/dbfield"
	"github.com/jongio/exturl/formfield"
	"github.com/jongio/exturl/metrics"
	"github.com/jongio/exturl/urlutil"
)

// errInvalidURLs is returned by validate when any value fails.
var errInvalidURLs = errors.New("one or more URLs are invalid")

type normalizeResult struct {
	Input string `json:"input"`
	URL   string `json:"url"`
}

type validateResult struct {
	Input   string `json:"input"`
	Value   string `json:"value"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type inspectResult struct {
	Input string `json:"input"`
	urlutil.Views
}

type attrsResult struct {
	Attributes map[string]string `json:"attributes"`
	RightTitle string            `json:"rightTitle"`
}

func newNormalizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <url>...",
		Short: "Print the canonical form of each URL",
		Long: `Print the canonical form of each URL, one per line. Values that cannot be
parsed print as an empty line.`,
		Example: `  exturl normalize www.example.com/ "user:pw@example.com/a?b=1"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]normalizeResult, len(args))
			for i, raw := range args {
				canonical := opts.cfg.Normalize(raw)
				metrics.RecordNormalize(canonical)
				results[i] = normalizeResult{Input: raw, URL: canonical}
			}

			out := opts.printer(cmd)
			return out.Print(results, func() {
				for _, r := range results {
					out.Plain("%s", r.URL)
				}
			})
		},
	}
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "validate <url>...",
		Short: "Check URLs against the validation pattern",
		Long: `Check URLs against the validation pattern. Each value is normalized first, as
a form submission would be, unless --raw is given. The command fails when any
value is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validateResult, len(args))
			invalid := 0
			for i, input := range args {
				r := validateResult{Input: input}
				if raw {
					r.Value = strings.TrimSpace(input)
					r.Valid = opts.cfg.Validate(r.Value)
					metrics.RecordValidate(r.Valid)
				} else {
					var errs formfield.ErrorList
					field := formfield.New("url", "URL", formfield.WithConfig(opts.cfg)).SetValue(input)
					r.Valid = field.Validate(&errs)
					r.Value = field.Value()
				}
				if !r.Valid {
					r.Message = urlutil.ValidationMessage
					invalid++
				}
				results[i] = r
			}

			out := opts.printer(cmd)
			err := out.Print(results, func() {
				for _, r := range results {
					if r.Valid {
						out.Success("%s", displayValue(r.Value))
					} else {
						out.Error("%s: %s", displayValue(r.Value), r.Message)
					}
				}
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%w (%d of %d)", errInvalidURLs, invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "validate the input as given, without normalizing")
	return cmd
}

func displayValue(v string) string {
	if v == "" {
		return `""`
	}
	return v
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <url>",
		Short: "Show the derived views of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical := opts.cfg.Normalize(args[0])
			metrics.RecordNormalize(canonical)
			result := inspectResult{Input: args[0], Views: urlutil.Describe(canonical)}

			out := opts.printer(cmd)
			return out.Print(result, func() {
				out.Label("url", out.URL(result.URL))
				out.Label("domain", result.Domain)
				out.Label("short", result.DomainShort)
				out.Label("no www", result.NoWWW)
				out.Label("path", result.Path)
				out.Label("nice", result.Nice)
				out.Label("icon", result.Icon)
			})
		},
	}
}

func newAttrsCmd(opts *rootOptions) *cobra.Command {
	var (
		name, title, value, rightTitle string
		maxLength                      int
	)
	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "Print the HTML attributes of a URL form field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			column := dbfield.New(name)
			if cmd.Flags().Changed("max-length") {
				column.Size = maxLength
			}
			field := column.ScaffoldFormField(title,
				formfield.WithConfig(opts.cfg),
				formfield.WithRightTitle(rightTitle),
			).SetValue(value)

			result := attrsResult{Attributes: field.Attributes(), RightTitle: string(field.RightTitle())}

			out := opts.printer(cmd)
			return out.Print(result, func() {
				keys := make([]string, 0, len(result.Attributes))
				for k := range result.Attributes {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					out.Label(k, result.Attributes[k])
				}
				if result.RightTitle != "" {
					out.Label("right title", result.RightTitle)
				}
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "URL", "field name")
	cmd.Flags().StringVar(&title, "title", "", "field title (default: the name)")
	cmd.Flags().StringVar(&value, "value", "", "field value")
	cmd.Flags().StringVar(&rightTitle, "right-title", "", "text shown to the right of the input")
	cmd.Flags().IntVar(&maxLength, "max-length", urlutil.MaxLength, "maxlength attribute; 0 removes it")
	return cmd
}
