package urlutil

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	parts, err := Parse("https://alice:pw@example.com:8080/a/b?c=d#e")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Parts{
		Scheme:   "https",
		User:     "alice",
		Password: "pw",
		Host:     "example.com",
		Port:     "8080",
		Path:     "/a/b",
		Query:    "c=d",
		Fragment: "e",
	}
	if len(parts) != len(want) {
		t.Fatalf("Parse() returned %d parts, want %d: %v", len(parts), len(want), parts)
	}
	for c, v := range want {
		if parts[c] != v {
			t.Errorf("parts[%s] = %q, want %q", c, parts[c], v)
		}
	}
}

func TestParseMissingHost(t *testing.T) {
	for _, in := range []string{"http://", "https://", "http:///path"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnparseable) {
			t.Errorf("Parse(%q) error = %v, want ErrUnparseable", in, err)
		}
	}
}

func TestParseWithoutScheme(t *testing.T) {
	parts, err := Parse("www.hostname.com")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if parts.Has(Host) {
		t.Errorf("schemeless value should not have a host, got %q", parts[Host])
	}
	if parts[Path] != "www.hostname.com" {
		t.Errorf("parts[path] = %q, want %q", parts[Path], "www.hostname.com")
	}
}

func TestPartsString(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
		want  string
	}{
		{"host only", Parts{Host: "example.com"}, "example.com"},
		{"host and path", Parts{Host: "example.com", Path: "/a"}, "example.com/a"},
		{"relative path gets slash", Parts{Scheme: "https", Host: "example.com", Path: "a"}, "https://example.com/a"},
		{"password without user", Parts{Scheme: "http", Password: "pw", Host: "h.com"}, "http://h.com"},
		{"port without host", Parts{Scheme: "http", Port: "81", Path: "/x"}, "http:///x"},
		{"escaped userinfo", Parts{Scheme: "http", User: "a b", Host: "h.com"}, "http://a%20b@h.com"},
		{"ipv6", Parts{Scheme: "http", Host: "::1", Port: "80"}, "http://[::1]:80"},
		{"ipv6 zone escaped", Parts{Scheme: "http", Host: "fe80::1%en0", Path: "/x"}, "http://[fe80::1%25en0]/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.parts.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		in      string
		want    Component
		wantErr bool
	}{
		{"scheme", Scheme, false},
		{"PASS", Password, false},
		{"password", Password, false},
		{" fragment ", Fragment, false},
		{"hostname", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseComponent(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownComponent) {
					t.Errorf("ParseComponent(%q) error = %v, want ErrUnknownComponent", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseComponent(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseComponent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComponentJSONKeys(t *testing.T) {
	data, err := json.Marshal(Removals{User: true, Query: false})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"query":false,"user":true}` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var back Removals
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back[User] || back[Query] {
		t.Errorf("json round trip lost values: %v", back)
	}
}

func TestMergeKeepsExisting(t *testing.T) {
	base := Removals{User: true, Password: true}
	merged := base.Merge(Removals{Query: true, Fragment: true})

	for _, c := range []Component{User, Password, Query, Fragment} {
		if !merged[c] {
			t.Errorf("merged[%s] = false, want true", c)
		}
	}
	if _, ok := base[Query]; ok {
		t.Error("Merge mutated the receiver")
	}
}
