package cliout

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func newTestPrinter(format Format) (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	p := New(&buf, format)
	p.unicode = true
	return p, &buf
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatDefault, false},
		{"default", FormatDefault, false},
		{"text", FormatDefault, false},
		{"JSON", FormatJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, wantErr %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestNoColorForBuffers(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	p.Success("saved %s", "k1")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("unexpected ANSI codes: %q", buf.String())
	}
	if got := buf.String(); got != "✓ saved k1\n" {
		t.Errorf("Success() wrote %q", got)
	}
}

func TestNoColorEnv(t *testing.T) {
	t.Setenv(EnvNoColor, "1")
	if detectColor(os.Stdout) {
		t.Error("NO_COLOR must disable color")
	}
}

func TestColor(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	p.SetColor(true)
	p.Error("bad")
	if !strings.HasPrefix(buf.String(), BrightRed+SymbolCross+Reset) {
		t.Errorf("Error() wrote %q", buf.String())
	}
	if got := p.URL("https://x.com"); got != BrightBlue+"https://x.com"+Reset {
		t.Errorf("URL() = %q", got)
	}
	if got := p.Status("valid"); got != BrightGreen+"valid"+Reset {
		t.Errorf("Status() = %q", got)
	}
}

func TestASCIIFallback(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	p.unicode = false
	p.Warning("careful")
	if got := buf.String(); got != "[!]  careful\n" {
		t.Errorf("Warning() wrote %q", got)
	}
}

func TestLabel(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	p.Label("domain", "example.com")
	p.Label("path", "")
	want := "   domain:      example.com\n   path:        -\n"
	if buf.String() != want {
		t.Errorf("Label() wrote %q, want %q", buf.String(), want)
	}
}

func TestPrintJSON(t *testing.T) {
	p, buf := newTestPrinter(FormatJSON)
	called := false
	if err := p.Print(map[string]string{"url": "https://x.com"}, func() { called = true }); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if called {
		t.Error("formatter must not run in JSON mode")
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got["url"] != "https://x.com" {
		t.Errorf("got %v", got)
	}
}

func TestJSONModeSilencesText(t *testing.T) {
	p, buf := newTestPrinter(FormatJSON)
	p.Header("Views")
	p.Success("ok")
	p.Label("a", "b")
	p.Table([]string{"A"}, []TableRow{{"A": "1"}})
	if buf.Len() != 0 {
		t.Errorf("JSON mode wrote text: %q", buf.String())
	}
}

func TestPrintDefault(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	if err := p.Print(nil, func() { p.Plain("hello %d", 1) }); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello 1\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestTable(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	p.Table([]string{"INPUT", "RESULT"}, []TableRow{
		{"INPUT": "example.com", "RESULT": "https://example.com"},
		{"INPUT": "http://", "RESULT": ""},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Table() wrote %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "   INPUT        RESULT" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "   -----------  -------------------" {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[3] != "   http://" {
		t.Errorf("last row = %q", lines[3])
	}
}

func TestHeader(t *testing.T) {
	p, buf := newTestPrinter(FormatDefault)
	p.Header("Views")
	if buf.String() != "Views\n=====\n" {
		t.Errorf("Header() wrote %q", buf.String())
	}
}
