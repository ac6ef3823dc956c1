package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// EnvNoColor disables color when set to any value.
const EnvNoColor = "NO_COLOR"

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols and their ASCII fallbacks
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
)

// ParseFormat converts a --output flag value into a Format.
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(format) {
	case "default", "text", "":
		return FormatDefault, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
}

// Printer writes formatted output to a writer.
type Printer struct {
	w       io.Writer
	format  Format
	color   bool
	unicode bool
}

// New returns a Printer for w. Color is enabled when w is a terminal.
func New(w io.Writer, format Format) *Printer {
	return &Printer{
		w:       w,
		format:  format,
		color:   detectColor(w),
		unicode: detectUnicodeSupport(),
	}
}

// detectColor reports whether w is a terminal that should get ANSI colors.
func detectColor(w io.Writer) bool {
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// detectUnicodeSupport checks if the terminal can display Unicode properly.
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	return os.Getenv("WT_SESSION") != "" ||
		os.Getenv("TERM_PROGRAM") == "vscode" ||
		os.Getenv("PSModulePath") != "" ||
		os.Getenv("TERM") != ""
}

// Format returns the output format.
func (p *Printer) Format() Format { return p.format }

// IsJSON returns true if the output format is JSON.
func (p *Printer) IsJSON() bool { return p.format == FormatJSON }

// SetColor forces color on or off.
func (p *Printer) SetColor(enabled bool) { p.color = enabled }

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// JSON writes data as indented JSON.
func (p *Printer) JSON(data any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format. For the default format it
// calls formatter, for JSON it encodes data.
func (p *Printer) Print(data any, formatter func()) error {
	if p.IsJSON() {
		return p.JSON(data)
	}
	formatter()
	return nil
}

func (p *Printer) style(code, text string) string {
	if !p.color {
		return text
	}
	return code + text + Reset
}

func (p *Printer) icon(unicode, ascii string) string {
	if p.unicode {
		return unicode
	}
	return ascii
}

func (p *Printer) line(format string, args ...any) {
	if p.IsJSON() {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Header prints a bold header with a divider
func (p *Printer) Header(text string) {
	p.line("%s\n%s", p.style(Bold, text), strings.Repeat("=", len(text)))
}

// Success prints a success message with a green checkmark
func (p *Printer) Success(format string, args ...any) {
	p.line("%s %s", p.style(BrightGreen, p.icon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with a red cross
func (p *Printer) Error(format string, args ...any) {
	p.line("%s %s", p.style(BrightRed, p.icon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow triangle
func (p *Printer) Warning(format string, args ...any) {
	p.line("%s  %s", p.style(BrightYellow, p.icon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Label prints a label and value pair; empty values print as "-".
func (p *Printer) Label(label, value string) {
	if value == "" {
		value = "-"
	}
	p.line("   %s %s", p.style(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Plain prints text without formatting.
func (p *Printer) Plain(format string, args ...any) {
	p.line(format, args...)
}

// URL styles a URL in bright blue.
func (p *Printer) URL(url string) string {
	return p.style(BrightBlue, url)
}

// Status styles a status word by its meaning.
func (p *Printer) Status(status string) string {
	switch strings.ToLower(status) {
	case "ok", "valid", "saved", "deleted":
		return p.style(BrightGreen, status)
	case "invalid", "error", "missing":
		return p.style(BrightRed, status)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a table with the given headers and rows.
func (p *Printer) Table(headers []string, rows []TableRow) {
	if len(rows) == 0 || p.IsJSON() {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	var b strings.Builder
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(p.style(Bold, fmt.Sprintf("%-*s", widths[header], header)) + "  ")
	}
	p.line("%s", strings.TrimRight(b.String(), " "))

	b.Reset()
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("-", widths[header]) + "  ")
	}
	p.line("%s", strings.TrimRight(b.String(), " "))

	for _, row := range rows {
		b.Reset()
		b.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&b, "%-*s  ", widths[header], row[header])
		}
		p.line("%s", strings.TrimRight(b.String(), " "))
	}
}
